package dashboardapimodels

// SummaryView - сводка по воронке найма для стартовой страницы.
type SummaryView struct {
	Requisitions map[string]int64 `json:"requisitions"` // счетчики заявок по итоговому статусу согласования
	Applications map[string]int64 `json:"applications"` // счетчики откликов по этапу воронки
	OpenJobs     int64            `json:"open_jobs"`
}
