package role

import "mandi/internal/pkg/errs"

// Operation names a workflow verb for allowlist lookup and error reporting.
type Operation string

const (
	OpCreateEntry      Operation = "createEntry"
	OpAttachGrading    Operation = "attachGrading"
	OpUpdateGrading    Operation = "updateGrading"
	OpDecide           Operation = "decide"
	OpAttachCooking    Operation = "attachCooking"
	OpSetOffer         Operation = "setOffer"
	OpFillMissing      Operation = "fillMissing"
	OpAssignSupervisor Operation = "assignSupervisor"
	OpRecordTrip       Operation = "recordTrip"
	OpRecordWeight     Operation = "recordWeight"
	OpCloseLot         Operation = "closeLot"
	OpSettleOwner      Operation = "settleOwner"
	OpSettleManager    Operation = "settleManager"
	OpApproveReview    Operation = "approveReview"
)

// allowlist is the single source of truth for which roles may invoke which
// operation. Keyed by operation name, consulted once per call.
func allowlist() map[Operation][]Role {
	return map[Operation][]Role{
		OpCreateEntry:      {Staff, Admin},
		OpAttachGrading:    {Staff, Admin},
		OpUpdateGrading:    {Staff, Admin},
		OpDecide:           {Owner, Admin},
		OpAttachCooking:    {Staff, Admin},
		OpSetOffer:         {Admin},
		OpFillMissing:      {Manager},
		OpAssignSupervisor: {Admin, Owner},
		OpRecordTrip:       {Supervisor, Staff},
		OpRecordWeight:     {Supervisor, Staff},
		OpCloseLot:         {Admin, Owner},
		OpSettleOwner:      {Owner, Admin},
		OpSettleManager:    {Manager},
		OpApproveReview:    {Owner, Admin},
	}
}

// Authorize returns nil when the role may invoke the operation, otherwise a
// typed Unauthorized error. Unknown operations reject every role.
func Authorize(op Operation, r Role) error {
	if err := r.Validate(); err != nil {
		return errs.NewUnauthorizedError(string(op), r.String())
	}
	for _, allowed := range allowlist()[op] {
		if allowed == r {
			return nil
		}
	}
	return errs.NewUnauthorizedError(string(op), r.String())
}
