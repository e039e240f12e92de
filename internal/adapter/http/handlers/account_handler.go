package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

// AccountHandler serves the local profile, the subscription and remote auth.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// GetProfile godoc
// @Summary  Local user profile
// @Tags     account
// @Produce  json
// @Success  200 {object} entities.UserProfile
// @Failure  404 {object} pkg.HTTPError
// @Router   /account/profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.usecase.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary  Save the local user profile
// @Tags     account
// @Accept   json
// @Produce  json
// @Param    profile body request.ProfileRequest true "Profile"
// @Success  200 {object} entities.UserProfile
// @Failure  400 {object} pkg.HTTPError
// @Router   /account/profile [put]
func (h *AccountHandler) SaveProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	profile, err := h.usecase.SaveProfile(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetSubscription godoc
// @Summary  Current subscription
// @Tags     account
// @Produce  json
// @Success  200 {object} entities.SubscriptionState
// @Router   /account/subscription [get]
func (h *AccountHandler) GetSubscription(c *gin.Context) {
	sub, err := h.usecase.Subscription(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListPlans godoc
// @Summary  Subscription plans
// @Tags     account
// @Produce  json
// @Success  200 {object} response.ListResponse[response.PlanResponse]
// @Router   /plans [get]
func (h *AccountHandler) ListPlans(c *gin.Context) {
	plans := entities.Plans()
	out := make([]response.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, response.FromPlanTerms(p))
	}
	c.JSON(http.StatusOK, response.NewList(out))
}

// Upgrade godoc
// @Summary  Upgrade the subscription plan
// @Tags     account
// @Accept   json
// @Produce  json
// @Param    body body request.UpgradeRequest true "Upgrade"
// @Success  200 {object} entities.SubscriptionState
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /account/subscription/upgrade [post]
func (h *AccountHandler) Upgrade(c *gin.Context) {
	var payload request.UpgradeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	sub, err := h.usecase.Upgrade(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// SignUp godoc
// @Summary  Register with the identity provider
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.SignUpRequest true "Sign-up"
// @Success  201 {object} entities.UserProfile
// @Failure  502 {object} pkg.HTTPError
// @Router   /auth/signup [post]
func (h *AccountHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	profile, err := h.usecase.SignUp(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// SignIn godoc
// @Summary  Sign in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body request.SignInRequest true "Credentials"
// @Success  200 {object} response.SessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /auth/signin [post]
func (h *AccountHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}
