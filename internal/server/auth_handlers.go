package server

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"go.uber.org/zap"

	"github.com/ism7788/math-practice/internal/auth"
	"github.com/ism7788/math-practice/internal/store"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validEmail(req.Email) || len(req.Password) < 6 {
		s.respondError(w, http.StatusBadRequest, "validation failed")
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		s.log.Error("sign-in lookup", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("issue token", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	auth.SetCookie(w, token, s.cfg.SecureCookies)
	s.respond(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSignOut(w http.ResponseWriter, _ *http.Request) {
	auth.ClearCookie(w)
	s.respond(w, http.StatusOK, map[string]bool{"ok": true})
}

// requester resolves the calling user from the session cookie.
func (s *Server) requester(r *http.Request) (*store.User, error) {
	claims, err := s.tokens.FromRequest(r)
	if err != nil {
		return nil, err
	}
	return s.store.UserByID(claims.Subject)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.requester(r)
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	memberships, err := s.store.MembershipsForUser(user.ID)
	if err != nil {
		s.log.Error("load memberships", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	type membershipOut struct {
		SchoolID   string     `json:"schoolId"`
		Role       store.Role `json:"role"`
		GradeLevel *int       `json:"gradeLevel,omitempty"`
		ClassName  *string    `json:"className,omitempty"`
		Subject    *string    `json:"subject,omitempty"`
	}
	out := struct {
		ID          string          `json:"id"`
		Email       string          `json:"email"`
		Name        *string         `json:"name,omitempty"`
		Memberships []membershipOut `json:"memberships"`
	}{ID: user.ID, Email: user.Email, Name: user.Name, Memberships: []membershipOut{}}
	for _, m := range memberships {
		out.Memberships = append(out.Memberships, membershipOut{
			SchoolID:   m.SchoolID,
			Role:       m.Role,
			GradeLevel: m.GradeLevel,
			ClassName:  m.ClassName,
			Subject:    m.Subject,
		})
	}
	s.respond(w, http.StatusOK, out)
}

type createUserRequest struct {
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Name       *string    `json:"name,omitempty"`
	Role       store.Role `json:"role"`
	GradeLevel *int       `json:"gradeLevel,omitempty"`
	ClassName  *string    `json:"className,omitempty"`
	Subject    *string    `json:"subject,omitempty"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requester(r)
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	adminMembership, err := s.store.MembershipWithRole(requester.ID, store.RoleAdmin)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusForbidden, "forbidden (admin only)")
		return
	}
	if err != nil {
		s.log.Error("admin lookup", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validEmail(req.Email) || len(req.Password) < 6 {
		s.respondError(w, http.StatusBadRequest, "validation failed")
		return
	}
	if !store.ValidRole(req.Role) || req.Role == store.RoleAdmin {
		s.respondError(w, http.StatusBadRequest, "invalid role")
		return
	}
	if req.Role == store.RoleStudent && req.GradeLevel == nil {
		s.respondError(w, http.StatusBadRequest, "gradeLevel is required for STUDENT")
		return
	}
	if req.GradeLevel != nil && (*req.GradeLevel < 1 || *req.GradeLevel > 12) {
		s.respondError(w, http.StatusBadRequest, "gradeLevel must be between 1 and 12")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("hash password", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	user, err := s.store.UpsertUser(req.Email, req.Name, passwordHash)
	if err != nil {
		s.log.Error("upsert user", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	membership := store.SchoolMembership{
		UserID:   user.ID,
		SchoolID: adminMembership.SchoolID,
		Role:     req.Role,
	}
	switch req.Role {
	case store.RoleStudent:
		membership.GradeLevel = req.GradeLevel
		membership.ClassName = req.ClassName
	case store.RoleSubjectTeacher, store.RoleSubjectSupervisor:
		subject := "Math"
		if req.Subject != nil {
			subject = *req.Subject
		}
		membership.Subject = &subject
	}
	if err := s.store.UpsertMembership(membership); err != nil {
		s.log.Error("upsert membership", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"ok": true,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
		"schoolId": adminMembership.SchoolID,
	})
}

type resetPasswordRequest struct {
	Email       string  `json:"email"`
	NewPassword *string `json:"newPassword,omitempty"`
}

func tempPassword() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requester(r)
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	adminLike, err := s.store.MembershipWithRole(requester.ID, store.RoleAdmin, store.RoleSubjectSupervisor)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusForbidden, "forbidden (admin/supervisor only)")
		return
	}
	if err != nil {
		s.log.Error("membership lookup", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validEmail(req.Email) {
		s.respondError(w, http.StatusBadRequest, "validation failed")
		return
	}
	if req.NewPassword != nil && len(*req.NewPassword) < 6 {
		s.respondError(w, http.StatusBadRequest, "validation failed")
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		s.log.Error("user lookup", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	_, err = s.store.MembershipInSchool(user.ID, adminLike.SchoolID, store.RoleStudent)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "student not in your school")
		return
	}
	if err != nil {
		s.log.Error("student lookup", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	temp := ""
	if req.NewPassword != nil {
		temp = *req.NewPassword
	} else {
		temp, err = tempPassword()
		if err != nil {
			s.log.Error("generate password", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, "unexpected error")
			return
		}
	}

	passwordHash, err := auth.HashPassword(temp)
	if err != nil {
		s.log.Error("hash password", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	if err := s.store.SetPassword(user.ID, passwordHash); err != nil {
		s.log.Error("set password", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	// The plaintext is returned once and never stored.
	s.respond(w, http.StatusOK, map[string]any{
		"ok":           true,
		"email":        user.Email,
		"tempPassword": temp,
	})
}
