package database

import (
	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

// EnsureAdmin creates the admin account when no account exists yet. Re-runs
// are no-ops, so it is safe to call on every start.
func EnsureAdmin(db *gorm.DB, username, password string) (created bool, err error) {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin := models.Admin{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return false, err
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Seed fills empty content tables with sample data. Tables that already hold
// rows are left untouched, so the seeder can run any number of times.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Bio{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			bio := models.Bio{
				Name:      "Ayaskant Dash",
				Tagline:   "Full-Stack Developer & AI Enthusiast",
				AboutMe: "Computer Science undergraduate with hands-on experience in full-stack development, " +
					"cloud computing, and AI-powered applications. Skilled in building scalable web applications, " +
					"real-time chat systems, and interactive dashboards.",
				Email:     "ayaskant2003@gmail.com",
				Phone:     "+91 7008412057",
				Location:  "Bhubaneswar, India",
				ResumeURL: "/static/docs/resume.pdf",
			}
			if err := tx.Create(&bio).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Skill{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			skills := []models.Skill{
				{SkillName: "Python", ProficiencyLevel: 85, Category: "Programming", IconClass: "fab fa-python"},
				{SkillName: "JavaScript", ProficiencyLevel: 80, Category: "Programming", IconClass: "fab fa-js-square"},
				{SkillName: "Go", ProficiencyLevel: 75, Category: "Programming", IconClass: "fas fa-code"},
				{SkillName: "React", ProficiencyLevel: 70, Category: "Framework", IconClass: "fab fa-react"},
				{SkillName: "PostgreSQL", ProficiencyLevel: 80, Category: "Database", IconClass: "fas fa-database"},
				{SkillName: "MongoDB", ProficiencyLevel: 70, Category: "Database", IconClass: "fas fa-leaf"},
				{SkillName: "AWS", ProficiencyLevel: 70, Category: "Cloud", IconClass: "fab fa-aws"},
				{SkillName: "Docker", ProficiencyLevel: 65, Category: "DevOps", IconClass: "fab fa-docker"},
			}
			for i := range skills {
				skills[i].DisplayOrder = i
				if err := tx.Create(&skills[i]).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&models.SocialLink{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			links := []models.SocialLink{
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/ayaskant-dash", IconClass: "fab fa-linkedin"},
				{Platform: "GitHub", URL: "https://github.com/ayaskant-12", IconClass: "fab fa-github"},
				{Platform: "Email", URL: "mailto:ayaskant2003@gmail.com", IconClass: "fas fa-envelope"},
			}
			for i := range links {
				links[i].DisplayOrder = i
				if err := tx.Create(&links[i]).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&models.Project{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			projects := []models.Project{
				{
					Title:       "Guesthouse/Hotel Management System",
					Description: "Full-stack web app with guest check-in/out, room tracking, bookings, and invoice generation.",
					TechStack:   "Python, Flask, PostgreSQL, Tailwind, HTMX, Alpine.js",
					ProjectLink: "#",
					GithubLink:  "#",
					Featured:    true,
				},
				{
					Title:       "WhatsApp-like Web Chat Application",
					Description: "End-to-end encrypted messaging with AI features, voice and video calls over WebRTC.",
					TechStack:   "Python, Flask, Socket.IO, WebRTC, OpenAI API",
					ProjectLink: "#",
					GithubLink:  "#",
					Featured:    true,
				},
				{
					Title:       "Manga Reading Website",
					Description: "Web platform with user and admin modules, authentication and role-based access control.",
					TechStack:   "Python, Flask, Django, PostgreSQL, HTML/CSS/JS",
					ProjectLink: "#",
					GithubLink:  "#",
					Featured:    true,
				},
			}
			for i := range projects {
				if err := tx.Create(&projects[i]).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
