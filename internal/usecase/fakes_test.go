package usecase

import (
	"context"
	"fmt"
	"sync"

	"gyomutime/internal/domain/entity"
	"gyomutime/pkg/errors"
)

type fakeSubmissionRepo struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]*entity.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: map[string]*entity.Submission{}}
}

func (r *fakeSubmissionRepo) NewID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	return fmt.Sprintf("sub-%d", r.nextID)
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *submission
	r.subs[submission.ID] = &copied
	return nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission, ok := r.subs[id]
	if !ok {
		return nil, errors.NotFound("Submission", nil)
	}
	copied := *submission
	return &copied, nil
}

func (r *fakeSubmissionRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Submission
	for _, s := range r.subs {
		if s.OwnerUID == ownerUID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ListAll(ctx context.Context) ([]*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Submission
	for _, s := range r.subs {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission, ok := r.subs[id]
	if !ok {
		return errors.NotFound("Submission", nil)
	}
	submission.Status = status
	return nil
}

func (r *fakeSubmissionRepo) AppendResult(ctx context.Context, id string, result entity.FileMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission, ok := r.subs[id]
	if !ok {
		return errors.NotFound("Submission", nil)
	}
	submission.Results = append(submission.Results, result)
	return nil
}

func (r *fakeSubmissionRepo) AppendMessage(ctx context.Context, id string, message entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission, ok := r.subs[id]
	if !ok {
		return errors.NotFound("Submission", nil)
	}
	submission.Messages = append(submission.Messages, message)
	return nil
}

type fakeStorage struct {
	deletedPrefixes []string
	failSigning     bool
}

func (s *fakeStorage) SignedUploadURL(ctx context.Context, storagePath, contentType string) (string, error) {
	if s.failSigning {
		return "", fmt.Errorf("signing unavailable")
	}
	return "https://signed.example.com/upload/" + storagePath, nil
}

func (s *fakeStorage) SignedDownloadURL(ctx context.Context, storagePath string) (string, error) {
	if s.failSigning {
		return "", fmt.Errorf("signing unavailable")
	}
	return "https://signed.example.com/download/" + storagePath, nil
}

func (s *fakeStorage) DeleteByPrefix(ctx context.Context, prefix string) error {
	s.deletedPrefixes = append(s.deletedPrefixes, prefix)
	return nil
}

func (s *fakeStorage) Close() error { return nil }

type fakeTemplateRepo struct {
	nextID    int
	templates map[string]*entity.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*entity.Template{}}
}

func (r *fakeTemplateRepo) NewID() string {
	r.nextID++
	return fmt.Sprintf("tpl-%d", r.nextID)
}

func (r *fakeTemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	template, ok := r.templates[id]
	if !ok {
		return nil, errors.NotFound("Template", nil)
	}
	copied := *template
	return &copied, nil
}

func (r *fakeTemplateRepo) List(ctx context.Context) ([]*entity.Template, error) {
	var out []*entity.Template
	for _, tpl := range r.templates {
		copied := *tpl
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, template *entity.Template) error {
	if _, ok := r.templates[template.ID]; !ok {
		return errors.NotFound("Template", nil)
	}
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.templates[id]; !ok {
		return errors.NotFound("Template", nil)
	}
	delete(r.templates, id)
	return nil
}

type fakeAdminRepo struct {
	code   string
	admins map[string]string
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]string{}}
}

func (r *fakeAdminRepo) GetAdminCode(ctx context.Context) (string, error) {
	if r.code == "" {
		return "", errors.NotFound("Admin code", nil)
	}
	return r.code, nil
}

func (r *fakeAdminRepo) SetAdminCode(ctx context.Context, code, updatedBy string) error {
	r.code = code
	return nil
}

func (r *fakeAdminRepo) RecordAdmin(ctx context.Context, email, addedBy string) error {
	r.admins[email] = addedBy
	return nil
}

func (r *fakeAdminRepo) RemoveAdmin(ctx context.Context, email string) error {
	delete(r.admins, email)
	return nil
}

type fakeUserAdmin struct {
	uidsByEmail map[string]string
	roles       map[string]bool
}

func newFakeUserAdmin() *fakeUserAdmin {
	return &fakeUserAdmin{
		uidsByEmail: map[string]string{},
		roles:       map[string]bool{},
	}
}

func (s *fakeUserAdmin) SetAdminRole(ctx context.Context, uid string, admin bool) error {
	s.roles[uid] = admin
	return nil
}

func (s *fakeUserAdmin) GetUserUIDByEmail(ctx context.Context, email string) (string, error) {
	uid, ok := s.uidsByEmail[email]
	if !ok {
		return "", errors.NotFound("User", nil)
	}
	return uid, nil
}

func (s *fakeUserAdmin) SearchUsers(ctx context.Context, query, pageToken string, limit int) ([]entity.UserRecord, string, error) {
	return []entity.UserRecord{{UID: "uid-1", Email: "one@example.com"}}, "", nil
}

type fakeEmail struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (s *fakeEmail) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if s.fail {
		return fmt.Errorf("provider rejected")
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func user(uid string) *entity.AuthUser {
	return &entity.AuthUser{UID: uid, Email: uid + "@example.com", EmailVerified: true, Role: "user"}
}

func admin(uid string) *entity.AuthUser {
	return &entity.AuthUser{UID: uid, Email: uid + "@example.com", EmailVerified: true, Role: "admin"}
}
