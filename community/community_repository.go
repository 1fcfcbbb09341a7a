package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const teamColumns = `id, name, captain_id, COALESCE(description, ''), COALESCE(logo_url, ''), members_count,
            ranking_points, wins, losses, draws, goals_for, goals_against, active, created_at`

func scanTeam(row pgx.Row) (Team, error) {
	var team Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.CaptainID,
		&team.Description,
		&team.LogoURL,
		&team.MembersCount,
		&team.RankingPoints,
		&team.Wins,
		&team.Losses,
		&team.Draws,
		&team.GoalsFor,
		&team.GoalsAgainst,
		&team.Active,
		&team.CreatedAt,
	)

	return team, err
}

func (r *Repository) GetActiveTeams(ctx context.Context) ([]Team, error) {
	sql := `
            SELECT ` + teamColumns + `
            FROM "court-booking".teams
            WHERE active = true
            ORDER BY ranking_points DESC, name;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	defer rows.Close()

	teams := []Team{}

	for rows.Next() {
		team, err := scanTeam(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning team row: %w", err)
		}

		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}

	return teams, nil
}

func (r *Repository) GetTeamByID(ctx context.Context, id string) (Team, error) {
	sql := `
			SELECT ` + teamColumns + `
			FROM "court-booking".teams
			WHERE id=$1;
		`

	team, err := scanTeam(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Team{}, ErrTeamNotFound
	}

	if err != nil {
		return Team{}, fmt.Errorf("failed to fetch team with id %v: %w", id, err)
	}

	return team, nil
}

func (r *Repository) GetTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error) {
	sql := `
            SELECT id, team_id, user_id, role, COALESCE(position, ''), joined_at
            FROM "court-booking".team_members
            WHERE team_id=$1
            ORDER BY joined_at;
        `

	rows, err := r.conn.Query(ctx, sql, teamID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch members of team '%v': %w", teamID, err)
	}

	defer rows.Close()

	members := []TeamMember{}

	for rows.Next() {
		var member TeamMember
		err := rows.Scan(&member.ID, &member.TeamID, &member.UserID, &member.Role, &member.Position, &member.JoinedAt)

		if err != nil {
			return nil, fmt.Errorf("error scanning team member row: %w", err)
		}

		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

func (r *Repository) GetUserTeams(ctx context.Context, userID string) ([]Team, error) {
	sql := `
            SELECT ` + qualifiedTeamColumns() + `
            FROM "court-booking".teams
            JOIN "court-booking".team_members ON team_members.team_id = teams.id
            WHERE team_members.user_id=$1 AND teams.active = true
            ORDER BY teams.name;
        `

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams for user '%v': %w", userID, err)
	}

	defer rows.Close()

	teams := []Team{}

	for rows.Next() {
		team, err := scanTeam(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning team row: %w", err)
		}

		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}

	return teams, nil
}

// InsertTeam creates the team and its captain membership atomically.
func (r *Repository) InsertTeam(ctx context.Context, team Team, captainMember TeamMember) (Team, error) {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return Team{}, fmt.Errorf("failed to start transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	teamSQL := `
			INSERT INTO "court-booking".teams(id, name, captain_id, description, logo_url, members_count, active)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), 1, true)
			RETURNING created_at;
		`

	err = tx.QueryRow(ctx, teamSQL,
		team.ID,
		team.Name,
		team.CaptainID,
		team.Description,
		team.LogoURL,
	).Scan(&team.CreatedAt)

	if err != nil {
		return Team{}, fmt.Errorf("failed to insert team: %w", err)
	}

	memberSQL := `
			INSERT INTO "court-booking".team_members(id, team_id, user_id, role, position)
			VALUES ($1, $2, $3, 'captain', NULLIF($4, ''));
		`

	_, err = tx.Exec(ctx, memberSQL, captainMember.ID, team.ID, team.CaptainID, captainMember.Position)

	if err != nil {
		return Team{}, fmt.Errorf("failed to insert captain membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Team{}, fmt.Errorf("failed to commit team creation: %w", err)
	}

	team.MembersCount = 1
	team.Active = true

	return team, nil
}

func (r *Repository) InsertTeamMember(ctx context.Context, member TeamMember) error {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	sql := `
			INSERT INTO "court-booking".team_members(id, team_id, user_id, role, position)
			VALUES ($1, $2, $3, 'member', NULLIF($4, ''));
		`

	_, err = tx.Exec(ctx, sql, member.ID, member.TeamID, member.UserID, member.Position)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyMember
	}

	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}

	countSQL := `
            UPDATE "court-booking".teams
            SET members_count = members_count + 1
            WHERE id=$1;
        `

	if _, err := tx.Exec(ctx, countSQL, member.TeamID); err != nil {
		return fmt.Errorf("failed to update members count: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) DeleteTeamMember(ctx context.Context, teamID, userID string) error {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	sql := `
            DELETE FROM "court-booking".team_members
            WHERE team_id=$1 AND user_id=$2;
        `

	tag, err := tx.Exec(ctx, sql, teamID, userID)

	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	countSQL := `
            UPDATE "court-booking".teams
            SET members_count = GREATEST(members_count - 1, 0)
            WHERE id=$1;
        `

	if _, err := tx.Exec(ctx, countSQL, teamID); err != nil {
		return fmt.Errorf("failed to update members count: %w", err)
	}

	return tx.Commit(ctx)
}

const tournamentColumns = `id, name, description, category, max_teams, registration_fee, prize_pool,
            to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
            to_char(registration_deadline, 'YYYY-MM-DD'), status, organizer_id,
            (SELECT COUNT(*) FROM "court-booking".tournament_registrations r
             WHERE r.tournament_id = tournaments.id AND r.status = 'registered'),
            created_at`

func scanTournament(row pgx.Row) (Tournament, error) {
	var t Tournament
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Category,
		&t.MaxTeams,
		&t.RegistrationFee,
		&t.PrizePool,
		&t.StartDate,
		&t.EndDate,
		&t.RegistrationDeadline,
		&t.Status,
		&t.OrganizerID,
		&t.RegisteredTeams,
		&t.CreatedAt,
	)

	return t, err
}

func (r *Repository) GetTournaments(ctx context.Context) ([]Tournament, error) {
	sql := `
            SELECT ` + tournamentColumns + `
            FROM "court-booking".tournaments
            ORDER BY start_date;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tournaments: %w", err)
	}

	defer rows.Close()

	tournaments := []Tournament{}

	for rows.Next() {
		tournament, err := scanTournament(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning tournament row: %w", err)
		}

		tournaments = append(tournaments, tournament)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tournament rows: %w", err)
	}

	return tournaments, nil
}

func (r *Repository) GetTournamentByID(ctx context.Context, id string) (Tournament, error) {
	sql := `
			SELECT ` + tournamentColumns + `
			FROM "court-booking".tournaments
			WHERE id=$1;
		`

	tournament, err := scanTournament(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Tournament{}, ErrTournamentNotFound
	}

	if err != nil {
		return Tournament{}, fmt.Errorf("failed to fetch tournament with id %v: %w", id, err)
	}

	return tournament, nil
}

func (r *Repository) InsertTournament(ctx context.Context, tournament Tournament) (Tournament, error) {
	sql := `
			INSERT INTO "court-booking".tournaments(
			id, name, description, category, max_teams, registration_fee, prize_pool,
			start_date, end_date, registration_deadline, status, organizer_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		tournament.ID,
		tournament.Name,
		tournament.Description,
		tournament.Category,
		tournament.MaxTeams,
		tournament.RegistrationFee,
		tournament.PrizePool,
		tournament.StartDate,
		tournament.EndDate,
		tournament.RegistrationDeadline,
		tournament.Status,
		tournament.OrganizerID,
	).Scan(&tournament.CreatedAt)

	if err != nil {
		return Tournament{}, fmt.Errorf("failed to insert tournament: %w", err)
	}

	return tournament, nil
}

func (r *Repository) CountRegistrations(ctx context.Context, tournamentID string) (int, error) {
	sql := `
            SELECT COUNT(*)
            FROM "court-booking".tournament_registrations
            WHERE tournament_id=$1 AND status='registered';
        `

	var count int
	err := r.conn.QueryRow(ctx, sql, tournamentID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return count, nil
}

func (r *Repository) InsertRegistration(ctx context.Context, registration TournamentRegistration) (TournamentRegistration, error) {
	sql := `
			INSERT INTO "court-booking".tournament_registrations(id, tournament_id, team_id, payment_status, status)
			VALUES ($1, $2, $3, 'pending', 'registered')
			RETURNING registration_date;
		`

	err := r.conn.QueryRow(ctx, sql,
		registration.ID,
		registration.TournamentID,
		registration.TeamID,
	).Scan(&registration.RegistrationDate)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return TournamentRegistration{}, ErrAlreadyRegistered
	}

	if err != nil {
		return TournamentRegistration{}, fmt.Errorf("failed to insert registration: %w", err)
	}

	registration.PaymentStatus = "pending"
	registration.Status = "registered"

	return registration, nil
}

const postColumns = `id, author_id, type, title, description, to_char(game_date, 'YYYY-MM-DD'), game_time,
            location, COALESCE(players_needed, 0), COALESCE(position_seeking, ''), contact_info, status, created_at`

func scanPost(row pgx.Row) (CommunityPost, error) {
	var post CommunityPost
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Type,
		&post.Title,
		&post.Description,
		&post.GameDate,
		&post.GameTime,
		&post.Location,
		&post.PlayersNeeded,
		&post.PositionSeeking,
		&post.ContactInfo,
		&post.Status,
		&post.CreatedAt,
	)

	return post, err
}

func (r *Repository) GetActivePosts(ctx context.Context) ([]CommunityPost, error) {
	sql := `
            SELECT ` + postColumns + `
            FROM "court-booking".community_posts
            WHERE status='active'
            ORDER BY created_at DESC;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch community posts: %w", err)
	}

	defer rows.Close()

	posts := []CommunityPost{}

	for rows.Next() {
		post, err := scanPost(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func (r *Repository) GetPostByID(ctx context.Context, id string) (CommunityPost, error) {
	sql := `
			SELECT ` + postColumns + `
			FROM "court-booking".community_posts
			WHERE id=$1;
		`

	post, err := scanPost(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return CommunityPost{}, ErrPostNotFound
	}

	if err != nil {
		return CommunityPost{}, fmt.Errorf("failed to fetch post with id %v: %w", id, err)
	}

	return post, nil
}

func (r *Repository) InsertPost(ctx context.Context, post CommunityPost) (CommunityPost, error) {
	sql := `
			INSERT INTO "court-booking".community_posts(
			id, author_id, type, title, description, game_date, game_time, location,
			players_needed, position_seeking, contact_info, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, 0), NULLIF($10, ''), $11, 'active')
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		post.ID,
		post.AuthorID,
		post.Type,
		post.Title,
		post.Description,
		post.GameDate,
		post.GameTime,
		post.Location,
		post.PlayersNeeded,
		post.PositionSeeking,
		post.ContactInfo,
	).Scan(&post.CreatedAt)

	if err != nil {
		return CommunityPost{}, fmt.Errorf("failed to insert post: %w", err)
	}

	post.Status = "active"

	return post, nil
}

func (r *Repository) SetPostStatus(ctx context.Context, id, status string) error {
	sql := `
            UPDATE "court-booking".community_posts
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update post '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

// AwardPoints records a points ledger entry and rolls the user counters in
// one transaction.
func (r *Repository) AwardPoints(ctx context.Context, entryID, userID, description, entryType string, points int, relatedBookingID string) error {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	entrySQL := `
			INSERT INTO "court-booking".user_points(id, user_id, points, description, type, related_booking_id)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid);
		`

	_, err = tx.Exec(ctx, entrySQL, entryID, userID, points, description, entryType, relatedBookingID)

	if err != nil {
		return fmt.Errorf("failed to insert points entry: %w", err)
	}

	userSQL := `
            UPDATE "court-booking".users
            SET points = points + $1,
                total_bookings = total_bookings + CASE WHEN $2 <> '' THEN 1 ELSE 0 END,
                updated_at = now()
            WHERE id=$3;
        `

	if _, err := tx.Exec(ctx, userSQL, points, relatedBookingID, userID); err != nil {
		return fmt.Errorf("failed to update user points: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) InsertReferral(ctx context.Context, referral Referral) (Referral, error) {
	sql := `
			INSERT INTO "court-booking".referrals(id, referrer_id, referred_id, status, reward_points)
			VALUES ($1, $2, $3, 'pending', $4)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		referral.ID,
		referral.ReferrerID,
		referral.ReferredID,
		referral.RewardPoints,
	).Scan(&referral.CreatedAt)

	if err != nil {
		return Referral{}, fmt.Errorf("failed to insert referral: %w", err)
	}

	referral.Status = "pending"

	return referral, nil
}

func (r *Repository) GetReferralByID(ctx context.Context, id string) (Referral, error) {
	sql := `
			SELECT id, referrer_id, referred_id, status, reward_points, created_at, completed_at
			FROM "court-booking".referrals
			WHERE id=$1;
		`

	var referral Referral
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&referral.ID,
		&referral.ReferrerID,
		&referral.ReferredID,
		&referral.Status,
		&referral.RewardPoints,
		&referral.CreatedAt,
		&referral.CompletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Referral{}, ErrReferralNotFound
	}

	if err != nil {
		return Referral{}, fmt.Errorf("failed to fetch referral with id %v: %w", id, err)
	}

	return referral, nil
}

func (r *Repository) CompleteReferral(ctx context.Context, id string) error {
	sql := `
            UPDATE "court-booking".referrals
            SET status='completed', completed_at=now()
            WHERE id=$1 AND status='pending';
        `

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to complete referral '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReferralNotFound
	}

	return nil
}

func qualifiedTeamColumns() string {
	return `teams.id, teams.name, teams.captain_id, COALESCE(teams.description, ''), COALESCE(teams.logo_url, ''),
            teams.members_count, teams.ranking_points, teams.wins, teams.losses, teams.draws,
            teams.goals_for, teams.goals_against, teams.active, teams.created_at`
}
