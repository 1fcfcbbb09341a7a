package community

import (
	"errors"
	"time"
)

type Team struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CaptainID     string    `json:"captainId"`
	Description   string    `json:"description,omitempty"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	MembersCount  int       `json:"membersCount"`
	RankingPoints int       `json:"rankingPoints"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Draws         int       `json:"draws"`
	GoalsFor      int       `json:"goalsFor"`
	GoalsAgainst  int       `json:"goalsAgainst"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TeamMember struct {
	ID       string    `json:"id"`
	TeamID   string    `json:"teamId"`
	UserID   string    `json:"userId"`
	Role     string    `json:"role"` // captain, member
	Position string    `json:"position,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

const (
	TournamentUpcoming         = "upcoming"
	TournamentRegistrationOpen = "registration_open"
	TournamentInProgress       = "in_progress"
	TournamentCompleted        = "completed"
	TournamentCancelled        = "cancelled"
)

type Tournament struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	MaxTeams             int       `json:"maxTeams"`
	RegistrationFee      int       `json:"registrationFee"`
	PrizePool            string    `json:"prizePool"`
	StartDate            string    `json:"startDate"`
	EndDate              string    `json:"endDate"`
	RegistrationDeadline string    `json:"registrationDeadline"`
	Status               string    `json:"status"`
	OrganizerID          string    `json:"organizerId"`
	RegisteredTeams      int       `json:"registeredTeams"`
	CreatedAt            time.Time `json:"createdAt"`
}

type TournamentRegistration struct {
	ID               string    `json:"id"`
	TournamentID     string    `json:"tournamentId"`
	TeamID           string    `json:"teamId"`
	RegistrationDate time.Time `json:"registrationDate"`
	PaymentStatus    string    `json:"paymentStatus"`
	Status           string    `json:"status"` // registered, withdrawn
}

const (
	PostSeekingTeam    = "seeking_team"
	PostSeekingPlayers = "seeking_players"
)

type CommunityPost struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"authorId"`
	Type            string    `json:"type"` // seeking_team, seeking_players
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	GameDate        string    `json:"gameDate"`
	GameTime        string    `json:"gameTime"`
	Location        string    `json:"location"`
	PlayersNeeded   int       `json:"playersNeeded,omitempty"`
	PositionSeeking string    `json:"positionSeeking,omitempty"`
	ContactInfo     string    `json:"contactInfo"`
	Status          string    `json:"status"` // active, closed, expired
	CreatedAt       time.Time `json:"createdAt"`
}

type Referral struct {
	ID           string     `json:"id"`
	ReferrerID   string     `json:"referrerId"`
	ReferredID   string     `json:"referredId"`
	Status       string     `json:"status"` // pending, completed
	RewardPoints int        `json:"rewardPoints"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

var ErrTeamNotFound = errors.New("team not found")

var ErrTournamentNotFound = errors.New("tournament not found")

var ErrPostNotFound = errors.New("post not found")

var ErrReferralNotFound = errors.New("referral not found")

var ErrAlreadyMember = errors.New("user already in team")

var ErrNotCaptain = errors.New("only the team captain can perform this operation")

var ErrRegistrationClosed = errors.New("tournament registration closed")

var ErrTournamentFull = errors.New("tournament is full")

var ErrAlreadyRegistered = errors.New("team already registered")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
