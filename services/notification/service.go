package notification

import "futureclim/models"

func (s *DefaultNotificationService) List() ([]models.Notification, error) {
	return s.Repo.GetAll()
}

// MarkRead sets read=true. Marking an already-read notification is a
// no-op that still succeeds; an unknown id is an explicit not-found.
func (s *DefaultNotificationService) MarkRead(id string) (*models.Notification, error) {
	updated, err := s.Repo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *DefaultNotificationService) UnreadCount() (int64, error) {
	return s.Repo.CountUnread()
}
