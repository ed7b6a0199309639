package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// ApproveReviewCommandHandler finishes the pipeline for one entry.
type ApproveReviewCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewApproveReviewCommandHandler creates a handler for review approvals.
func NewApproveReviewCommandHandler(uowFactory EntryUoWFactory) ApproveReviewCommandHandler {
	return ApproveReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review approval command.
func (h *ApproveReviewCommandHandler) Handle(ctx context.Context, cmd ApproveReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpApproveReview, cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entryRepo := uow.EntryRepository()
	e, err := entryRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	if err = e.ApproveReview(); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
