// Package http provides http transport for activity
package http

import (
	"context"
	stdhttp "net/http"

	"github-activity/internal/modkit/httpkit"
	"github-activity/internal/platform/logger"
	pnet "github-activity/internal/platform/net"
	"github-activity/internal/services/activity/domain"
	svc "github-activity/internal/services/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one user, one upstream request
	httpkit.Get(r, "/users/{username}", h.user)

	// several users, fetched one after another
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
}

type handlers struct{ svc svc.Service }

// logCtx carries the chi request id into the logger context
func logCtx(r *stdhttp.Request) context.Context {
	return logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), "")
}

// swagger:route GET /activity/users/{username} Activity activityUser
// @Summary Recent public activity for a GitHub user
// @Tags Activity
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} domain.ActivityView "ok"
// @Router /activity/users/{username} [get]
func (h *handlers) user(r *stdhttp.Request) (any, error) {
	u := httpkit.Param(r, "username")
	return domain.View(h.svc.FetchActivity(logCtx(r), u)), nil
}

// swagger:route POST /activity/batch Activity activityBatch
// @Summary Recent public activity for several GitHub users
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Usernames"
// @Success 200 {array} domain.ActivityView "ok"
// @Router /activity/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	outs := h.svc.FetchMany(logCtx(r), in.Usernames)
	views := make([]domain.ActivityView, 0, len(outs))
	for _, o := range outs {
		views = append(views, domain.View(o))
	}
	return views, nil
}
