package models

import (
	"github.com/pkg/errors"
)

func NewEnumError(what, got string) error {
	return errors.Errorf("недопустимое значение поля «%s»: %v", what, got)
}

// StageStatus - статус отдельного этапа согласования.
type StageStatus string

const (
	StagePending  StageStatus = "pending"
	StageApproved StageStatus = "approved"
	StageRejected StageStatus = "rejected"
)

func (s StageStatus) IsDecided() bool {
	return s == StageApproved || s == StageRejected
}

// Decision - решение согласующего по этапу.
type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

func (d Decision) Validate() error {
	if d != DecisionApprove && d != DecisionReject {
		return NewEnumError("решение", string(d))
	}
	return nil
}

func (d Decision) ToStatus() StageStatus {
	if d == DecisionApprove {
		return StageApproved
	}
	return StageRejected
}

// StageName - имя этапа в цепочке согласования.
type StageName string

const (
	StageDepartmentHead StageName = "department_head"
	StageHr             StageName = "hr"
	StageCoo            StageName = "coo"
	StageHod            StageName = "hod"
)

var stageHumanName = map[StageName]string{
	StageDepartmentHead: "Руководитель подразделения",
	StageHr:             "HR",
	StageCoo:            "Операционный директор",
	StageHod:            "Руководитель подразделения",
}

func (s StageName) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return string(s)
}

// StageDef - этап цепочки: имя и роль, которой разрешено решение.
type StageDef struct {
	Name StageName
	Role UserRole
}

// Chain - упорядоченная цепочка этапов согласования.
type Chain []StageDef

// RequisitionChain - последовательность согласования заявки на подбор.
var RequisitionChain = Chain{
	{Name: StageDepartmentHead, Role: HodRole},
	{Name: StageHr, Role: RecruiterRole},
	{Name: StageCoo, Role: CooRole},
}

// OfferChain - последовательность согласования оффера (без этапа HR).
var OfferChain = Chain{
	{Name: StageHod, Role: HodRole},
	{Name: StageCoo, Role: CooRole},
}

func (c Chain) IndexOf(stage StageName) int {
	for idx, def := range c {
		if def.Name == stage {
			return idx
		}
	}
	return -1
}

func (c Chain) RoleFor(stage StageName) (UserRole, bool) {
	idx := c.IndexOf(stage)
	if idx < 0 {
		return "", false
	}
	return c[idx].Role, true
}

// OfferApprovalStatus - денормализованный статус оффера: какой этап ожидается.
type OfferApprovalStatus string

const (
	OfferPendingHod OfferApprovalStatus = "pending_hod"
	OfferPendingCoo OfferApprovalStatus = "pending_coo"
	OfferApproved   OfferApprovalStatus = "approved"
	OfferRejected   OfferApprovalStatus = "rejected"
)

var offerApprovalHumanName = map[OfferApprovalStatus]string{
	OfferPendingHod: "Ожидает руководителя подразделения",
	OfferPendingCoo: "Ожидает операционного директора",
	OfferApproved:   "Согласован",
	OfferRejected:   "Отклонен",
}

func (s OfferApprovalStatus) ToHuman() string {
	if human, exist := offerApprovalHumanName[s]; exist {
		return human
	}
	return string(s)
}
