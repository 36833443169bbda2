package dto

import (
	"easybooking/internal/domains/reservation/model"
	"easybooking/shared/constant"
	gDto "easybooking/shared/dto"
	gModel "easybooking/shared/model"
	"easybooking/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    string    `json:"room_id"    validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
	PartySize int       `json:"party_size"`
	Notes     string    `json:"notes"      validate:"omitempty,max=500"`
}

func (c *CreateReservationRequest) ToModel(userID string, status model.Status, now time.Time) model.Reservation {
	return model.Reservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		RoomID:    c.RoomID,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Status:    status,
		PartySize: c.PartySize,
		Notes:     c.Notes,
		Metadata:  gModel.NewMetadata(now, userID),
	}
}

// UpdateReservationRequest is a partial update, nil fields are left unchanged.
type UpdateReservationRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	PartySize *int       `json:"party_size"`
	Notes     *string    `json:"notes"      validate:"omitempty,max=500"`
}

func (u *UpdateReservationRequest) IsEmpty() bool {
	return u.StartTime == nil && u.EndTime == nil && u.PartySize == nil && u.Notes == nil
}

// Apply returns current with the requested fields replaced.
func (u *UpdateReservationRequest) Apply(current model.Reservation) model.Reservation {
	next := current

	if u.StartTime != nil {
		next.StartTime = *u.StartTime
	}

	if u.EndTime != nil {
		next.EndTime = *u.EndTime
	}

	if u.PartySize != nil {
		next.PartySize = *u.PartySize
	}

	if u.Notes != nil {
		next.Notes = *u.Notes
	}

	return next
}

type ReservationResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	RoomID    string       `json:"room_id"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Status    model.Status `json:"status"`
	PartySize int          `json:"party_size"`
	Notes     string       `json:"notes"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.DateFormat)
	r.Status = model.Status
	r.PartySize = model.PartySize
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
