package server

import (
	"helpdesk/internal/config"
	"helpdesk/internal/handler"
	"helpdesk/internal/mailer"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
	"helpdesk/internal/service"
	"helpdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds every persistence handle
type Repositories struct {
	Users       repository.IUserRepository
	Tickets     repository.ITicketRepository
	OTPs        repository.IOTPRepository
	Branches    generic.BaseRepository[*model.Branch]
	Categories  generic.BaseRepository[*model.Category]
	Departments generic.BaseRepository[*model.Department]
}

// Services holds the business logic layer
type Services struct {
	Auth   *service.AuthService
	OTP    *service.OTPService
	Ticket *service.TicketService
	User   *service.UserService
	Master *service.MasterService
}

// Handlers holds the HTTP layer
type Handlers struct {
	Auth   *handler.AuthHandler
	Ticket *handler.TicketHandler
	Master *handler.MasterHandler
	User   *handler.UserHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:       repository.NewUserRepository(db),
		Tickets:     repository.NewTicketRepository(db),
		OTPs:        repository.NewOTPRepository(db),
		Branches:    repository.NewBranchRepository(db),
		Categories:  repository.NewCategoryRepository(db),
		Departments: repository.NewDepartmentRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories) *Services {
	mail := mailer.NewSMTPMailer(cfg.SMTP)

	otpService := service.NewOTPService(repos.OTPs, repos.Users, mail, cfg.OTPTTLSeconds)
	return &Services{
		Auth:   service.NewAuthService(repos.Users, otpService, cfg),
		OTP:    otpService,
		Ticket: service.NewTicketService(repos.Tickets, repos.Users),
		User:   service.NewUserService(repos.Users, cfg),
		Master: service.NewMasterService(repos.Branches, repos.Categories, repos.Departments),
	}
}

func InitHandlers(s *Services) *Handlers {
	return &Handlers{
		Auth:   handler.NewAuthHandler(s.Auth, s.OTP),
		Ticket: handler.NewTicketHandler(s.Ticket),
		Master: handler.NewMasterHandler(s.Master, s.User),
		User:   handler.NewUserHandler(s.User),
	}
}
