package cmd

import (
	"mandi/internal/adapters/out/postgres"
	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	varieties  *postgres.GormVarietyCatalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		varieties:  postgres.NewGormVarietyCatalog(gormDB),
	}
}

func (c *CompositionRoot) entryUoWFactory() commands.EntryUoWFactory {
	return FuncEntryUoWFactory(func() commands.EntryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateEntryCommandHandler() commands.CreateEntryCommandHandler {
	return commands.NewCreateEntryCommandHandler(c.entryUoWFactory(), c.varieties)
}

func (c *CompositionRoot) CreateAttachGradingCommandHandler() commands.AttachGradingCommandHandler {
	return commands.NewAttachGradingCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateGradingCommandHandler() commands.UpdateGradingCommandHandler {
	return commands.NewUpdateGradingCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateDecideCommandHandler() commands.DecideCommandHandler {
	return commands.NewDecideCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateAttachCookingCommandHandler() commands.AttachCookingCommandHandler {
	return commands.NewAttachCookingCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateSetOfferCommandHandler() commands.SetOfferCommandHandler {
	return commands.NewSetOfferCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateFillMissingCommandHandler() commands.FillMissingCommandHandler {
	return commands.NewFillMissingCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateAssignSupervisorCommandHandler() commands.AssignSupervisorCommandHandler {
	return commands.NewAssignSupervisorCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateRecordTripCommandHandler() commands.RecordTripCommandHandler {
	return commands.NewRecordTripCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateRecordWeightCommandHandler() commands.RecordWeightCommandHandler {
	return commands.NewRecordWeightCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateCloseLotCommandHandler() commands.CloseLotCommandHandler {
	return commands.NewCloseLotCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateSettleOwnerCommandHandler() commands.SettleOwnerCommandHandler {
	return commands.NewSettleOwnerCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateSettleManagerCommandHandler() commands.SettleManagerCommandHandler {
	return commands.NewSettleManagerCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateApproveReviewCommandHandler() commands.ApproveReviewCommandHandler {
	return commands.NewApproveReviewCommandHandler(c.entryUoWFactory())
}

func (c *CompositionRoot) CreateGetEntryProgressQueryHandler() queries.GetEntryProgressQueryHandler {
	return queries.NewGetEntryProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncompleteOffersQueryHandler() queries.GetIncompleteOffersQueryHandler {
	return queries.NewGetIncompleteOffersQueryHandler(c.gormDB)
}

type FuncEntryUoWFactory func() commands.EntryUoW

func (f FuncEntryUoWFactory) Create() commands.EntryUoW {
	return f()
}
