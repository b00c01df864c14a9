package services

import (
	"fmt"
	"sort"
	"sync"

	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the repository contracts,
// including the sentinel errors and the Job/Agent preloads the real
// queries perform.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) UpdateName(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Name = name
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		r.seq++
		job.ID = fmt.Sprintf("job-%d", r.seq)
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(employerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	jobs         *fakeJobRepo
	seq          int
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		jobs:         jobs,
	}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.AgentID == application.AgentID {
			return repositories.ErrDuplicateApplication
		}
	}
	r.seq++
	application.ID = fmt.Sprintf("app-%d", r.seq)
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *a
	if job, err := r.jobs.FindByID(a.JobID); err == nil {
		copied.Job = job
	}
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByJobAndAgent(jobID, agentID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.JobID == jobID && a.AgentID == agentID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByAgent(agentID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.AgentID == agentID {
			copied := *a
			if job, err := r.jobs.FindByID(a.JobID); err == nil {
				copied.Job = job
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
	seq           int
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return fmt.Errorf("storage unavailable")
	}
	r.seq++
	notification.ID = fmt.Sprintf("notif-%d", r.seq)
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindByUser(userID string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkAsRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) all() []*models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

type fakePaymentRepo struct {
	mu     sync.Mutex
	orders map[string]*models.PaymentOrder
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{orders: make(map[string]*models.PaymentOrder)}
}

func (r *fakePaymentRepo) Create(order *models.PaymentOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderID] = order
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(orderID string) (*models.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[orderID]; ok {
		return o, nil
	}
	return nil, repositories.ErrPaymentOrderNotFound
}

func (r *fakePaymentRepo) MarkPaid(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return repositories.ErrPaymentOrderNotFound
	}
	o.Status = models.PaymentStatusPaid
	return nil
}

func (r *fakePaymentRepo) MarkFailed(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return repositories.ErrPaymentOrderNotFound
	}
	o.Status = models.PaymentStatusFailed
	return nil
}

type recordedPush struct {
	UserID  string
	Event   string
	Payload any
}

type fakePusher struct {
	mu     sync.Mutex
	pushes []recordedPush
	fail   bool
}

func (p *fakePusher) Push(userID string, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return
	}
	p.pushes = append(p.pushes, recordedPush{UserID: userID, Event: event, Payload: payload})
}

func (p *fakePusher) all() []recordedPush {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]recordedPush, len(p.pushes))
	copy(out, p.pushes)
	return out
}
