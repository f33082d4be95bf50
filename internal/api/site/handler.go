package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahanteshk/foliochat/internal/domain"
	"github.com/mahanteshk/foliochat/internal/service"
)

// Handler handles the public site API: portfolio reads, the contact form
// and the chat widget endpoint.
type Handler struct {
	chat      *service.ChatService
	contact   *service.ContactService
	portfolio *service.PortfolioService
}

// NewHandler creates a new site handler
func NewHandler(chat *service.ChatService, contact *service.ContactService, portfolio *service.PortfolioService) *Handler {
	return &Handler{
		chat:      chat,
		contact:   contact,
		portfolio: portfolio,
	}
}

// RegisterRoutes registers the site routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/projects", h.ListProjects)
	r.GET("/blog", h.ListBlogPosts)
	r.POST("/contact", h.SubmitContact)
	r.POST("/chat", h.Chat)
}

// ListProjects returns the seeded projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.portfolio.Projects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListBlogPosts returns the seeded blog posts
func (h *Handler) ListBlogPosts(c *gin.Context) {
	posts, err := h.portfolio.BlogPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SubmitContact validates and stores a contact form submission
func (h *Handler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact form data"})
		return
	}

	record, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save contact message"})
		return
	}

	c.JSON(http.StatusOK, domain.ContactResponse{Success: true, Message: record})
}

// Chat resolves one chat turn and stores the exchange
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	record, err := h.chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process chat message"})
		return
	}

	c.JSON(http.StatusOK, domain.ChatResponse{Response: record.Response})
}
