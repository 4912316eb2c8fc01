package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/service"
)

// MemberManager is the membership ledger as seen by admins.
type MemberManager interface {
	Create(ctx context.Context, input service.MemberCreateInput) (*service.MemberView, error)
	List(ctx context.Context) ([]service.MemberView, error)
	Delete(ctx context.Context, id int64) error
}

// MemberHandler exposes /api/admin/members.
type MemberHandler struct {
	members MemberManager
}

// NewMemberHandler constructs handler.
func NewMemberHandler(members MemberManager) *MemberHandler {
	return &MemberHandler{members: members}
}

// Create handles POST /api/admin/members.
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	member, err := h.members.Create(c.UserContext(), service.MemberCreateInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(memberResponse(member))
}

// List handles GET /api/admin/members.
func (h *MemberHandler) List(c *fiber.Ctx) error {
	members, err := h.members.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, memberResponse(&members[i]))
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/admin/members/:id.
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.members.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func memberResponse(m *service.MemberView) dto.MemberResponse {
	return dto.MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		MembershipEnd: dto.NewDate(m.MembershipEnd),
		CreatedAt:     m.CreatedAt,
		RemainingDays: m.Membership.RemainingDays,
		Status:        string(m.Membership.Status),
	}
}
