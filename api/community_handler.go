package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/auth"
	"github.com/lacancha/court-booking-backend/community"
)

type CommunityService interface {
	GetActiveTeams(ctx context.Context) ([]community.Team, error)
	FindTeamByID(ctx context.Context, id string) (community.Team, []community.TeamMember, error)
	GetUserTeams(ctx context.Context, userID string) ([]community.Team, error)
	CreateTeam(ctx context.Context, captainID string, req community.CreateTeamRequest) (community.Team, error)
	JoinTeam(ctx context.Context, teamID, userID, position string) error
	LeaveTeam(ctx context.Context, teamID, userID string) error
	GetTournaments(ctx context.Context) ([]community.Tournament, error)
	CreateTournament(ctx context.Context, organizerID string, req community.CreateTournamentRequest) (community.Tournament, error)
	RegisterTeam(ctx context.Context, tournamentID, teamID, userID string) (community.TournamentRegistration, error)
	GetActivePosts(ctx context.Context) ([]community.CommunityPost, error)
	CreatePost(ctx context.Context, authorID string, req community.CreatePostRequest) (community.CommunityPost, error)
	ClosePost(ctx context.Context, postID, userID string) error
	CreateReferral(ctx context.Context, referrerID, referredID string) (community.Referral, error)
	CompleteReferral(ctx context.Context, referralID string) error
}

type CommunityHandler struct {
	service CommunityService
}

func NewCommunityHandler(service CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

func (h *CommunityHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()

	rg.GET("/teams", h.ListTeams)
	rg.GET("/teams/mine", h.ListMyTeams)
	rg.GET("/teams/:id", h.GetTeam)
	rg.POST("/teams", h.CreateTeam)
	rg.POST("/teams/:id/join", h.JoinTeam)
	rg.POST("/teams/:id/leave", h.LeaveTeam)

	rg.GET("/tournaments", h.ListTournaments)
	rg.POST("/tournaments", adminOnly, h.CreateTournament)
	rg.POST("/tournaments/:id/register", h.RegisterTeam)

	rg.GET("/posts", h.ListPosts)
	rg.POST("/posts", h.CreatePost)
	rg.PUT("/posts/:id/close", h.ClosePost)

	rg.POST("/referrals", h.CreateReferral)
	rg.PUT("/referrals/:id/complete", adminOnly, h.CompleteReferral)
}

func (h *CommunityHandler) ListTeams(c *gin.Context) {
	if teams, err := h.service.GetActiveTeams(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve teams"})
	} else {
		c.IndentedJSON(http.StatusOK, teams)
	}
}

func (h *CommunityHandler) ListMyTeams(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	teams, err := h.service.GetUserTeams(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve teams"})
		return
	}

	c.IndentedJSON(http.StatusOK, teams)
}

func (h *CommunityHandler) GetTeam(c *gin.Context) {
	id := c.Param("id")

	team, members, err := h.service.FindTeamByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, community.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch team"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"team": team, "members": members})
}

func (h *CommunityHandler) CreateTeam(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req community.CreateTeamRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), user.ID, req)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, team)
}

type joinTeamRequest struct {
	Position string `json:"position"`
}

func (h *CommunityHandler) JoinTeam(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	teamID := c.Param("id")

	var req joinTeamRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.JoinTeam(c.Request.Context(), teamID, user.ID, req.Position)

	if err != nil {
		c.Error(err)
		if errors.Is(err, community.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		} else if errors.Is(err, community.ErrAlreadyMember) {
			c.JSON(http.StatusConflict, gin.H{"error": "already a member of this team"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join team"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "joined team"})
}

func (h *CommunityHandler) LeaveTeam(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	teamID := c.Param("id")

	err := h.service.LeaveTeam(c.Request.Context(), teamID, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, community.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		} else if errors.Is(err, community.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "captain cannot leave the team"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave team"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "left team"})
}

func (h *CommunityHandler) ListTournaments(c *gin.Context) {
	if tournaments, err := h.service.GetTournaments(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tournaments"})
	} else {
		c.IndentedJSON(http.StatusOK, tournaments)
	}
}

func (h *CommunityHandler) CreateTournament(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req community.CreateTournamentRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	tournament, err := h.service.CreateTournament(c.Request.Context(), user.ID, req)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tournament"})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

type registerTeamRequest struct {
	TeamID string `json:"teamId" binding:"required"`
}

func (h *CommunityHandler) RegisterTeam(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	tournamentID := c.Param("id")

	var req registerTeamRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	registration, err := h.service.RegisterTeam(c.Request.Context(), tournamentID, req.TeamID, user.ID)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, community.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
		case errors.Is(err, community.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		case errors.Is(err, community.ErrNotCaptain):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the team captain can register"})
		case errors.Is(err, community.ErrRegistrationClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "registration is closed"})
		case errors.Is(err, community.ErrTournamentFull):
			c.JSON(http.StatusConflict, gin.H{"error": "tournament is full"})
		case errors.Is(err, community.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "team already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register team"})
		}

		return
	}

	c.JSON(http.StatusCreated, registration)
}

func (h *CommunityHandler) ListPosts(c *gin.Context) {
	if posts, err := h.service.GetActivePosts(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve posts"})
	} else {
		c.IndentedJSON(http.StatusOK, posts)
	}
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req community.CreatePostRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), user.ID, req)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *CommunityHandler) ClosePost(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	postID := c.Param("id")

	err := h.service.ClosePost(c.Request.Context(), postID, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, community.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		} else if errors.Is(err, community.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to close this post"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close post"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "post closed"})
}

type createReferralRequest struct {
	ReferredID string `json:"referredId" binding:"required"`
}

func (h *CommunityHandler) CreateReferral(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req createReferralRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	referral, err := h.service.CreateReferral(c.Request.Context(), user.ID, req.ReferredID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create referral"})
		return
	}

	c.JSON(http.StatusCreated, referral)
}

func (h *CommunityHandler) CompleteReferral(c *gin.Context) {
	id := c.Param("id")

	err := h.service.CompleteReferral(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, community.ErrReferralNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete referral"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "referral completed"})
}
