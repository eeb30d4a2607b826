package domain

// BatchInput is the body of a batch activity request
type BatchInput struct {
	Usernames []string `json:"usernames" validate:"required,min=1,max=20,dive,required" example:"octocat,torvalds"`
}

// ActivityView is the transport shape of an Outcome
type ActivityView struct {
	Username  string    `json:"username"   example:"octocat"`
	OK        bool      `json:"ok"         example:"true"`
	Lines     []string  `json:"lines"`
	ErrorKind ErrorKind `json:"error_kind" example:"none"`
}

// View converts an outcome for transports. Lines always holds the rendered strings
func View(o Outcome) ActivityView {
	return ActivityView{
		Username:  o.Username,
		OK:        o.OK(),
		Lines:     o.Render(),
		ErrorKind: o.Kind(),
	}
}
