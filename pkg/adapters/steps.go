package adapters

import (
	"github.com/isteps/burnout-risk/pkg/models/api"
	"github.com/isteps/burnout-risk/pkg/models/domain"
	"github.com/isteps/burnout-risk/pkg/models/store"
)

func MapStoreStepRecordToDomain(record store.StepRecord) domain.StepRecord {
	return domain.StepRecord{
		ID:     record.ID,
		Date:   record.RecordedAt,
		Count:  int(record.Count),
		Source: record.Source,
	}
}

func MapStoreStepRecordsToDomain(records []store.StepRecord) []domain.StepRecord {
	result := make([]domain.StepRecord, 0, len(records))
	for _, r := range records {
		result = append(result, MapStoreStepRecordToDomain(r))
	}
	return result
}

func MapDomainStepRecordToStore(userID string, record domain.StepRecord) store.StepRecord {
	return store.StepRecord{
		ID:         record.ID,
		UserID:     userID,
		RecordedAt: record.Date,
		Count:      int64(record.Count),
		Source:     record.Source,
	}
}

func MapDomainStepRecordsToStore(userID string, records []domain.StepRecord) []store.StepRecord {
	result := make([]store.StepRecord, 0, len(records))
	for _, r := range records {
		result = append(result, MapDomainStepRecordToStore(userID, r))
	}
	return result
}

func MapRecordStatsStoreToDomain(stats *store.RecordStats) *domain.RecordStats {
	if stats == nil {
		return nil
	}

	return &domain.RecordStats{
		RecordsCount:    stats.RecordsCount,
		FirstRecordTime: stats.FirstRecordTime,
		LastRecordTime:  stats.LastRecordTime,
	}
}

func MapRecordStatsDomainToApi(stats *domain.RecordStats) api.RecordStats {
	if stats == nil {
		return api.RecordStats{}
	}
	return api.RecordStats{
		RecordsCount:    stats.RecordsCount,
		FirstRecordTime: stats.FirstRecordTime,
		LastRecordTime:  stats.LastRecordTime,
	}
}
