package out

import (
	"context"

	purchaseout "ledgerdesk/internal/modules/purchase/port/out"
	sessionin "ledgerdesk/internal/modules/session/port/in"
	"ledgerdesk/internal/platform/id"
)

type SessionIdentity struct {
	session sessionin.Usecase
}

func NewSessionIdentity(session sessionin.Usecase) purchaseout.Identity {
	return &SessionIdentity{session: session}
}

func (s *SessionIdentity) CurrentUserID(ctx context.Context) (id.ID, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return id.ID{}, err
	}
	return user.ID, nil
}
