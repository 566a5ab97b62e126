package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gatortrips/internal/models/db_models"
	"gatortrips/internal/models/request_models"
	"gatortrips/internal/models/response_models"
	"gatortrips/internal/repositories"
	"gatortrips/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	GetTripsByOwner(ctx context.Context, ownerID string) ([]response_models.TripResponse, error)
	GetSharedTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID string) error
	LeaveTrip(ctx context.Context, accountID, tripID string) error
	InviteCollaborator(ctx context.Context, accountID, tripID, identifier string) (*response_models.AccountResponse, error)
	UpdateTravelMode(ctx context.Context, accountID, tripID, mode string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
	lookup   CollaboratorLookupInterface
}

func NewTripService(tripRepo repositories.TripRepository, lookup CollaboratorLookupInterface) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		lookup:   lookup,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	mode := db_models.TravelModeDriving
	if req.TravelMode != "" {
		mode = db_models.TravelMode(req.TravelMode)
		if !mode.Valid() {
			return nil, utils.ErrInvalidInput
		}
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		OwnerID:       ownerUUID,
		Name:          req.Name,
		StartDate:     start,
		EndDate:       end,
		Collaborators: pq.StringArray{},
		TravelMode:    mode,
	}

	if err := s.tripRepo.CreateTripWithDays(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildTripDetailResponse(trip), nil
}

func (s *TripService) GetTripsByOwner(ctx context.Context, ownerID string) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.GetTripsByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, db_models.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetSharedTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.GetSharedTrips(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, db_models.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.CanEdit(accountID) {
		return nil, utils.ErrForbidden
	}

	return db_models.BuildTripDetailResponse(trip), nil
}

// DeleteTrip is owner-only; collaborators leave instead.
func (s *TripService) DeleteTrip(ctx context.Context, accountID, tripID string) error {
	trip, err := s.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if !trip.IsOwner(accountID) {
		return utils.ErrForbidden
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) LeaveTrip(ctx context.Context, accountID, tripID string) error {
	trip, err := s.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	kept := make(pq.StringArray, 0, len(trip.Collaborators))
	found := false
	for _, id := range trip.Collaborators {
		if id == accountID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return utils.ErrForbidden
	}

	trip.Collaborators = kept
	if err := s.tripRepo.UpdateCollaborators(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) InviteCollaborator(ctx context.Context, accountID, tripID, identifier string) (*response_models.AccountResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.CanEdit(accountID) {
		return nil, utils.ErrForbidden
	}

	account, err := s.lookup.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrCollaboratorNotFound
	}

	invitedID := account.ID.String()
	if trip.IsOwner(invitedID) {
		return nil, utils.ErrInvalidInput
	}
	for _, id := range trip.Collaborators {
		if id == invitedID {
			// Already a collaborator; nothing to do.
			return buildAccountResponse(account), nil
		}
	}

	trip.Collaborators = append(trip.Collaborators, invitedID)
	if err := s.tripRepo.UpdateCollaborators(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildAccountResponse(account), nil
}

func (s *TripService) UpdateTravelMode(ctx context.Context, accountID, tripID, mode string) error {
	travelMode := db_models.TravelMode(mode)
	if !travelMode.Valid() {
		return utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if !trip.CanEdit(accountID) {
		return utils.ErrForbidden
	}

	if err := s.tripRepo.UpdateTravelMode(ctx, tripID, travelMode); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:          a.ID.String(),
		DisplayName: a.DisplayName,
		Email:       a.Email,
	}
}
