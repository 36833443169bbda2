package dto

import (
	"easybooking/internal/domains/room/model"
	"easybooking/shared"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
	"easybooking/shared/timezone"
	"fmt"
	"net/http"
	"time"
)

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Floor       int      `json:"floor"`
	Number      int      `json:"number"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Floor = model.Floor
	r.Number = model.Number
	r.Capacity = model.Capacity
	r.Description = model.Description

	r.Amenities = []string{}
	if len(model.Amenities) > 0 {
		r.Amenities = append(r.Amenities, model.Amenities...)
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	StartTime string `json:"start_time" validate:"required,timestamp"`
	EndTime   string `json:"end_time"   validate:"required,timestamp"`
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.StartTime = query.Get(constant.RequestParamStartTime)
	a.EndTime = query.Get(constant.RequestParamEndTime)
}

// Interval parses the requested window, the request must be validated first.
func (a *AvailabilityRequest) Interval() (start, end time.Time, err error) {
	return parseInterval(a.StartTime, a.EndTime)
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

func (a *AvailabilityResponse) FromResult(roomID string, start, end time.Time, available bool) {
	a.RoomID = roomID
	a.StartTime = timezone.Format(start, constant.DateFormat)
	a.EndTime = timezone.Format(end, constant.DateFormat)
	a.Available = available
}

// AvailableRoomsRequest searches free rooms. A missing party size matches every room.
type AvailableRoomsRequest struct {
	StartTime string `json:"start_time" validate:"required,timestamp"`
	EndTime   string `json:"end_time"   validate:"required,timestamp"`
	PartySize int    `json:"party_size"`
}

func (a *AvailableRoomsRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	a.StartTime = query.Get(constant.RequestParamStartTime)
	a.EndTime = query.Get(constant.RequestParamEndTime)

	if partySize := query.Get(constant.RequestParamPartySize); partySize != constant.Empty {
		value, err := shared.ConvertStringToInt(partySize)
		if err != nil {
			return failure.BadRequestFromString(constant.RequestParamPartySize + " must be an integer")
		}

		a.PartySize = value
	}

	return nil
}

func (a *AvailableRoomsRequest) Interval() (start, end time.Time, err error) {
	return parseInterval(a.StartTime, a.EndTime)
}

func parseInterval(startValue, endValue string) (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateFormat, startValue)
	if err != nil {
		return start, end, failure.BadRequest(fmt.Errorf("invalid %s: %w", constant.RequestParamStartTime, err))
	}

	end, err = timezone.Parse(constant.DateFormat, endValue)
	if err != nil {
		return start, end, failure.BadRequest(fmt.Errorf("invalid %s: %w", constant.RequestParamEndTime, err))
	}

	return start, end, nil
}
