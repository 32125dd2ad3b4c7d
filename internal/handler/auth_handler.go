package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-crm/internal/auth"
	"clinic-crm/internal/model"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/store"
)

const minPasswordLen = 8

func (h *Handler) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, invalid("all fields required")
	}
	if len(req.Password) < minPasswordLen {
		return nil, invalid("password too short")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, h.storeErr(err, logrus.Fields{"method": "Register"})
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
	}
	if err := h.store.Users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrExists) {
			// dup email, but don't reveal that
			return nil, status.Error(codes.AlreadyExists, "registration failed")
		}
		return nil, h.storeErr(err, logrus.Fields{"method": "Register"})
	}

	h.log.WithField("user_id", u.ID).Info("user registered")
	return h.issue(u)
}

func (h *Handler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, invalid("email and password required")
	}

	u, err := h.store.Users.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return h.issue(u)
}

func (h *Handler) issue(u *model.User) (*rpc.AuthResponse, error) {
	tok, exp, err := h.tokens.Make(u.ID, u.Email)
	if err != nil {
		return nil, h.storeErr(err, logrus.Fields{"user_id": u.ID})
	}
	return &rpc.AuthResponse{Token: tok, UserID: u.ID, ExpiresAt: exp}, nil
}
