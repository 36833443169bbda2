package dto_test

import (
	"easybooking/shared/constant"
	"easybooking/shared/dto"
	"easybooking/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	// Create test time values
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestFilterGroup_GetWhereClause_Range(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-1", Table: "reservations"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled", Table: "reservations"},
			dto.Filter{Field: "start_time", ArgName: "window_end", Operator: dto.FilterOperatorLess, Value: end, Table: "reservations"},
			dto.Filter{Field: "end_time", ArgName: "window_start", Operator: dto.FilterOperatorGreater, Value: start, Table: "reservations"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(reservations.room_id = :room_id AND reservations.status != :status AND " +
		"reservations.start_time < :window_end AND reservations.end_time > :window_start)"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if args["window_end"] != end || args["window_start"] != start {
		t.Errorf("expected range args to be bound, got %v", args)
	}
}
