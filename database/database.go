package database

import (
	"gorm.io/gorm"
)

type Database struct {
	adminRepo         *AdminRepo
	bioRepo           *BioRepo
	projectRepo       *ProjectRepo
	skillRepo         *SkillRepo
	socialLinkRepo    *SocialLinkRepo
	certificationRepo *CertificationRepo
	toolRepo          *ToolRepo
	educationRepo     *EducationRepo
	letsTalkRepo      *LetsTalkRepo
	messageRepo       *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		adminRepo:         NewAdminRepo(db),
		bioRepo:           NewBioRepo(db),
		projectRepo:       NewProjectRepo(db),
		skillRepo:         NewSkillRepo(db),
		socialLinkRepo:    NewSocialLinkRepo(db),
		certificationRepo: NewCertificationRepo(db),
		toolRepo:          NewToolRepo(db),
		educationRepo:     NewEducationRepo(db),
		letsTalkRepo:      NewLetsTalkRepo(db),
		messageRepo:       NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}

func (d Database) BioRepo() *BioRepo {
	return d.bioRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) ToolRepo() *ToolRepo {
	return d.toolRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) LetsTalkRepo() *LetsTalkRepo {
	return d.letsTalkRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}
