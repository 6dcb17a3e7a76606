package offerstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

func stages(hod, coo models.StageStatus) []dbmodels.StageSnapshot {
	return []dbmodels.StageSnapshot{
		{Name: models.StageHod, Record: dbmodels.StageRecord{Status: hod}},
		{Name: models.StageCoo, Record: dbmodels.StageRecord{Status: coo}},
	}
}

func TestApprovalStatusOf(t *testing.T) {
	cases := []struct {
		name     string
		hod, coo models.StageStatus
		expected models.OfferApprovalStatus
	}{
		{"новый оффер", models.StagePending, models.StagePending, models.OfferPendingHod},
		{"после руководителя", models.StageApproved, models.StagePending, models.OfferPendingCoo},
		{"полностью согласован", models.StageApproved, models.StageApproved, models.OfferApproved},
		{"отклонен руководителем", models.StageRejected, models.StagePending, models.OfferRejected},
		{"отклонен директором", models.StageApproved, models.StageRejected, models.OfferRejected},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, ApprovalStatusOf(stages(c.hod, c.coo)))
		})
	}
}
