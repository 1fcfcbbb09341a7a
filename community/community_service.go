package community

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const referralRewardPoints = 500

type CommunityRepository interface {
	GetActiveTeams(ctx context.Context) ([]Team, error)
	GetTeamByID(ctx context.Context, id string) (Team, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error)
	GetUserTeams(ctx context.Context, userID string) ([]Team, error)
	InsertTeam(ctx context.Context, team Team, captainMember TeamMember) (Team, error)
	InsertTeamMember(ctx context.Context, member TeamMember) error
	DeleteTeamMember(ctx context.Context, teamID, userID string) error
	GetTournaments(ctx context.Context) ([]Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (Tournament, error)
	InsertTournament(ctx context.Context, tournament Tournament) (Tournament, error)
	CountRegistrations(ctx context.Context, tournamentID string) (int, error)
	InsertRegistration(ctx context.Context, registration TournamentRegistration) (TournamentRegistration, error)
	GetActivePosts(ctx context.Context) ([]CommunityPost, error)
	GetPostByID(ctx context.Context, id string) (CommunityPost, error)
	InsertPost(ctx context.Context, post CommunityPost) (CommunityPost, error)
	SetPostStatus(ctx context.Context, id, status string) error
	AwardPoints(ctx context.Context, entryID, userID, description, entryType string, points int, relatedBookingID string) error
	InsertReferral(ctx context.Context, referral Referral) (Referral, error)
	GetReferralByID(ctx context.Context, id string) (Referral, error)
	CompleteReferral(ctx context.Context, id string) error
}

type Service struct {
	repo   CommunityRepository
	logger *slog.Logger
}

func NewService(repo CommunityRepository) *Service {
	return &Service{
		repo:   repo,
		logger: slog.Default().With("component", "community"),
	}
}

func (s *Service) GetActiveTeams(ctx context.Context) ([]Team, error) {
	return s.repo.GetActiveTeams(ctx)
}

func (s *Service) FindTeamByID(ctx context.Context, id string) (Team, []TeamMember, error) {
	team, err := s.repo.GetTeamByID(ctx, id)

	if err != nil {
		return Team{}, nil, err
	}

	members, err := s.repo.GetTeamMembers(ctx, id)

	if err != nil {
		return Team{}, nil, err
	}

	return team, members, nil
}

func (s *Service) GetUserTeams(ctx context.Context, userID string) ([]Team, error) {
	return s.repo.GetUserTeams(ctx, userID)
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Position    string `json:"position"`
}

func (s *Service) CreateTeam(ctx context.Context, captainID string, req CreateTeamRequest) (Team, error) {
	team := Team{
		ID:          uuid.NewString(),
		Name:        req.Name,
		CaptainID:   captainID,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}

	captain := TeamMember{
		ID:       uuid.NewString(),
		TeamID:   team.ID,
		UserID:   captainID,
		Role:     "captain",
		Position: req.Position,
	}

	return s.repo.InsertTeam(ctx, team, captain)
}

func (s *Service) JoinTeam(ctx context.Context, teamID, userID, position string) error {
	if _, err := s.repo.GetTeamByID(ctx, teamID); err != nil {
		return err
	}

	member := TeamMember{
		ID:       uuid.NewString(),
		TeamID:   teamID,
		UserID:   userID,
		Role:     "member",
		Position: position,
	}

	return s.repo.InsertTeamMember(ctx, member)
}

func (s *Service) LeaveTeam(ctx context.Context, teamID, userID string) error {
	team, err := s.repo.GetTeamByID(ctx, teamID)

	if err != nil {
		return err
	}

	// The captain cannot walk out of their own team.
	if team.CaptainID == userID {
		return ErrNotAllowed
	}

	return s.repo.DeleteTeamMember(ctx, teamID, userID)
}

func (s *Service) GetTournaments(ctx context.Context) ([]Tournament, error) {
	return s.repo.GetTournaments(ctx)
}

type CreateTournamentRequest struct {
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description"`
	Category             string `json:"category" binding:"required"`
	MaxTeams             int    `json:"maxTeams" binding:"required"`
	RegistrationFee      int    `json:"registrationFee"`
	PrizePool            string `json:"prizePool"`
	StartDate            string `json:"startDate" binding:"required"`
	EndDate              string `json:"endDate" binding:"required"`
	RegistrationDeadline string `json:"registrationDeadline" binding:"required"`
}

func (s *Service) CreateTournament(ctx context.Context, organizerID string, req CreateTournamentRequest) (Tournament, error) {
	tournament := Tournament{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		MaxTeams:             req.MaxTeams,
		RegistrationFee:      req.RegistrationFee,
		PrizePool:            req.PrizePool,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		Status:               TournamentRegistrationOpen,
		OrganizerID:          organizerID,
	}

	return s.repo.InsertTournament(ctx, tournament)
}

// RegisterTeam signs a team up for a tournament. Only the team captain can
// register, the tournament must still be open and under capacity.
func (s *Service) RegisterTeam(ctx context.Context, tournamentID, teamID, userID string) (TournamentRegistration, error) {
	tournament, err := s.repo.GetTournamentByID(ctx, tournamentID)

	if err != nil {
		return TournamentRegistration{}, err
	}

	if tournament.Status != TournamentRegistrationOpen {
		return TournamentRegistration{}, ErrRegistrationClosed
	}

	deadline, err := time.ParseInLocation(time.DateOnly, tournament.RegistrationDeadline, time.Local)

	if err != nil {
		return TournamentRegistration{}, fmt.Errorf("failed to parse registration deadline: %w", err)
	}

	if time.Now().After(deadline.Add(24 * time.Hour)) {
		return TournamentRegistration{}, ErrRegistrationClosed
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)

	if err != nil {
		return TournamentRegistration{}, err
	}

	if team.CaptainID != userID {
		return TournamentRegistration{}, ErrNotCaptain
	}

	count, err := s.repo.CountRegistrations(ctx, tournamentID)

	if err != nil {
		return TournamentRegistration{}, err
	}

	if count >= tournament.MaxTeams {
		return TournamentRegistration{}, ErrTournamentFull
	}

	registration := TournamentRegistration{
		ID:           uuid.NewString(),
		TournamentID: tournamentID,
		TeamID:       teamID,
	}

	return s.repo.InsertRegistration(ctx, registration)
}

func (s *Service) GetActivePosts(ctx context.Context) ([]CommunityPost, error) {
	return s.repo.GetActivePosts(ctx)
}

type CreatePostRequest struct {
	Type            string `json:"type" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	GameDate        string `json:"gameDate" binding:"required"`
	GameTime        string `json:"gameTime" binding:"required"`
	Location        string `json:"location" binding:"required"`
	PlayersNeeded   int    `json:"playersNeeded"`
	PositionSeeking string `json:"positionSeeking"`
	ContactInfo     string `json:"contactInfo" binding:"required"`
}

func (s *Service) CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (CommunityPost, error) {
	post := CommunityPost{
		ID:              uuid.NewString(),
		AuthorID:        authorID,
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		GameDate:        req.GameDate,
		GameTime:        req.GameTime,
		Location:        req.Location,
		PlayersNeeded:   req.PlayersNeeded,
		PositionSeeking: req.PositionSeeking,
		ContactInfo:     req.ContactInfo,
	}

	return s.repo.InsertPost(ctx, post)
}

func (s *Service) ClosePost(ctx context.Context, postID, userID string) error {
	post, err := s.repo.GetPostByID(ctx, postID)

	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return ErrNotAllowed
	}

	return s.repo.SetPostStatus(ctx, postID, "closed")
}

// AwardBookingPoints credits loyalty points earned by a completed booking.
func (s *Service) AwardBookingPoints(ctx context.Context, userID, bookingID string, points int) error {
	entryID := uuid.NewString()

	err := s.repo.AwardPoints(ctx, entryID, userID, "Puntos por reserva completada", "booking", points, bookingID)

	if err != nil {
		return fmt.Errorf("failed to award booking points: %w", err)
	}

	s.logger.Info("awarded booking points", "user", userID, "booking", bookingID, "points", points)

	return nil
}

func (s *Service) CreateReferral(ctx context.Context, referrerID, referredID string) (Referral, error) {
	referral := Referral{
		ID:           uuid.NewString(),
		ReferrerID:   referrerID,
		ReferredID:   referredID,
		RewardPoints: referralRewardPoints,
	}

	return s.repo.InsertReferral(ctx, referral)
}

// CompleteReferral marks the referral completed and credits the referrer.
func (s *Service) CompleteReferral(ctx context.Context, referralID string) error {
	referral, err := s.repo.GetReferralByID(ctx, referralID)

	if err != nil {
		return err
	}

	if err := s.repo.CompleteReferral(ctx, referralID); err != nil {
		return err
	}

	entryID := uuid.NewString()

	err = s.repo.AwardPoints(ctx, entryID, referral.ReferrerID, "Puntos por referido", "referral", referral.RewardPoints, "")

	if err != nil {
		s.logger.Warn("failed to award referral points", "referral", referralID, "error", err)
	}

	return nil
}
