package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/loan"
	"github.com/hanksha/boardgame-club-backend/users"
)

type LoanService interface {
	ListLoans(ctx context.Context, status loan.Status) ([]loan.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]loan.Loan, error)
	FindOverdue(ctx context.Context) ([]loan.Loan, error)
	FindLoanByID(ctx context.Context, id string) (loan.Loan, error)
	CreateLoan(ctx context.Context, user users.User, gameID string, estimatedReturnDate time.Time) (loan.Loan, error)
	RegisterReturn(ctx context.Context, loanID string, returnDate time.Time) (loan.Loan, error)
	DeleteLoan(ctx context.Context, loanID string) error
	CalculateDelayDays(l loan.Loan) int
}

type LoanHandler struct {
	loans     LoanService
	users     UserDirectory
	conflicts ConflictService
	clock     clock.Clock
}

func NewLoanHandler(loans LoanService, users UserDirectory, conflicts ConflictService, clk clock.Clock) *LoanHandler {
	return &LoanHandler{loans: loans, users: users, conflicts: conflicts, clock: clk}
}

func (h *LoanHandler) Register(rg *gin.RouterGroup) {
	managers := RequireRole(users.RoleAdmin, users.RoleExtendedUser)
	rg.GET("", managers, h.List)
	rg.GET("/overdue", managers, h.ListOverdue)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", managers, h.Create)
	rg.PUT("/:id/return", managers, h.Return)
	rg.DELETE("/:id", AdminOnly(), h.Delete)
}

// loanView is a loan with its delay computed for today.
type loanView struct {
	loan.Loan
	DelayDays int  `json:"delayDays"`
	Overdue   bool `json:"overdue"`
}

func (h *LoanHandler) view(l loan.Loan) loanView {
	return loanView{
		Loan:      l,
		DelayDays: h.loans.CalculateDelayDays(l),
		Overdue:   l.IsOverdue(clock.Today(h.clock)),
	}
}

func (h *LoanHandler) views(loans []loan.Loan) []loanView {
	views := make([]loanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, h.view(l))
	}
	return views
}

func (h *LoanHandler) List(c *gin.Context) {
	status := loan.Status(strings.ToUpper(c.Query("status")))
	loans, err := h.loans.ListLoans(c.Request.Context(), status)

	if err != nil {
		respondError(c, err, "failed to retrieve loans")
		return
	}

	c.IndentedJSON(http.StatusOK, h.views(loans))
}

func (h *LoanHandler) ListOverdue(c *gin.Context) {
	loans, err := h.loans.FindOverdue(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve overdue loans")
		return
	}

	c.IndentedJSON(http.StatusOK, h.views(loans))
}

func (h *LoanHandler) ListMine(c *gin.Context) {
	user := currentUser(c)
	loans, err := h.loans.ListByUser(c.Request.Context(), user.ID)

	if err != nil {
		respondError(c, err, "failed to retrieve loans")
		return
	}

	c.IndentedJSON(http.StatusOK, h.views(loans))
}

func (h *LoanHandler) GetByID(c *gin.Context) {
	user := currentUser(c)
	l, err := h.loans.FindLoanByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch loan")
		return
	}

	if !user.CanManageLoans() && l.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, h.view(l))
}

type createLoanRequest struct {
	UserID              string `json:"userId"`
	GameID              string `json:"gameId"`
	EstimatedReturnDate string `json:"estimatedReturnDate"`
}

func (h *LoanHandler) Create(c *gin.Context) {
	var req createLoanRequest

	if err := c.BindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	due, err := clock.ParseDate(req.EstimatedReturnDate)

	if err != nil {
		badRequest(c, err, "estimatedReturnDate must be YYYY-MM-DD")
		return
	}

	borrower := currentUser(c)

	if req.UserID != "" && req.UserID != borrower.ID {
		borrower, err = h.users.FindByID(c.Request.Context(), req.UserID)

		if err != nil {
			respondError(c, err, "failed to fetch borrower")
			return
		}
	}

	created, err := h.loans.CreateLoan(c.Request.Context(), borrower, req.GameID, due)

	if err != nil {
		respondError(c, err, "failed to create loan")
		return
	}

	response := gin.H{"loan": h.view(created)}

	report, err := h.conflicts.CheckConflicts(c.Request.Context(), created.GameID, due)

	if err != nil {
		c.Error(err)
	} else {
		response["conflicts"] = report
	}

	c.JSON(http.StatusCreated, response)
}

type returnLoanRequest struct {
	ReturnDate string `json:"returnDate"`
}

func (h *LoanHandler) Return(c *gin.Context) {
	var req returnLoanRequest

	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&req); err != nil {
			badRequest(c, err, "failed to parse JSON body")
			return
		}
	}

	returnDate := clock.Today(h.clock)

	if req.ReturnDate != "" {
		parsed, err := clock.ParseDate(req.ReturnDate)

		if err != nil {
			badRequest(c, err, "returnDate must be YYYY-MM-DD")
			return
		}

		returnDate = parsed
	}

	returned, err := h.loans.RegisterReturn(c.Request.Context(), c.Param("id"), returnDate)

	if err != nil {
		respondError(c, err, "failed to register return")
		return
	}

	c.IndentedJSON(http.StatusOK, h.view(returned))
}

func (h *LoanHandler) Delete(c *gin.Context) {
	if err := h.loans.DeleteLoan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete loan")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "loan deleted"})
}
