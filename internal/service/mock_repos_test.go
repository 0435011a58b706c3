package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
)

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	accounts map[string]*model.Account
	seq      int
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	for _, a := range m.accounts {
		if a.Username == account.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.AccountID == "" {
		m.seq++
		account.AccountID = fmt.Sprintf("acc-%d", m.seq)
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAccountRepo) Update(_ context.Context, account *model.Account) error {
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) Delete(_ context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	accounts  *mockAccountRepo // GetByID 模拟 Preload("Account") 用
	order     []string         // 按创建顺序，GetLatest 用
	seq       int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	for _, e := range m.employees {
		if e.EmployeeCode == employee.EmployeeCode || e.NationalID == employee.NationalID {
			return gorm.ErrDuplicatedKey
		}
	}
	if employee.EmployeeID == "" {
		m.seq++
		employee.EmployeeID = fmt.Sprintf("emp-%d", m.seq)
	}
	m.employees[employee.EmployeeID] = employee
	m.order = append(m.order, employee.EmployeeID)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// 模拟真实仓库的 Preload("Account")
	if e.AccountID != nil && m.accounts != nil {
		if acc, ok := m.accounts.accounts[*e.AccountID]; ok {
			e.Account = acc
		}
	}
	return e, nil
}

func (m *mockEmployeeRepo) GetLatest(_ context.Context) (*model.Employee, error) {
	for i := len(m.order) - 1; i >= 0; i-- {
		if e, ok := m.employees[m.order[i]]; ok {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) List(_ context.Context, filters *repository.EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	var matched []model.Employee
	for _, e := range m.employees {
		if filters != nil {
			if filters.Status != "" && e.Status != filters.Status {
				continue
			}
			if filters.Department != "" && e.Department != filters.Department {
				continue
			}
			if filters.Search != "" {
				s := strings.ToLower(filters.Search)
				if !strings.Contains(strings.ToLower(e.FirstName), s) &&
					!strings.Contains(strings.ToLower(e.LastName), s) &&
					!strings.Contains(strings.ToLower(e.EmployeeCode), s) {
					continue
				}
			}
		}
		matched = append(matched, *e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].EmployeeCode < matched[j].EmployeeCode })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockEmployeeRepo) ReplaceSpecialties(_ context.Context, employee *model.Employee, specialties []model.Specialty) error {
	employee.Specialties = specialties
	return nil
}

// ── Mock SpecialtyRepository ──

type mockSpecialtyRepo struct {
	specialties map[string]*model.Specialty
	seq         int
}

func newMockSpecialtyRepo() *mockSpecialtyRepo {
	return &mockSpecialtyRepo{specialties: make(map[string]*model.Specialty)}
}

func (m *mockSpecialtyRepo) Create(_ context.Context, specialty *model.Specialty) error {
	for _, sp := range m.specialties {
		if sp.Name == specialty.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if specialty.SpecialtyID == "" {
		m.seq++
		specialty.SpecialtyID = fmt.Sprintf("spec-%d", m.seq)
	}
	m.specialties[specialty.SpecialtyID] = specialty
	return nil
}

func (m *mockSpecialtyRepo) GetByID(_ context.Context, id string) (*model.Specialty, error) {
	if sp, ok := m.specialties[id]; ok {
		return sp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialtyRepo) GetByName(_ context.Context, name string) (*model.Specialty, error) {
	for _, sp := range m.specialties {
		if sp.Name == name {
			return sp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialtyRepo) List(_ context.Context) ([]model.Specialty, error) {
	var result []model.Specialty
	for _, sp := range m.specialties {
		if sp.IsActive {
			result = append(result, *sp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSpecialtyRepo) ListAll(_ context.Context) ([]model.Specialty, error) {
	var result []model.Specialty
	for _, sp := range m.specialties {
		result = append(result, *sp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSpecialtyRepo) ListByIDs(_ context.Context, ids []string) ([]model.Specialty, error) {
	var result []model.Specialty
	for _, id := range ids {
		if sp, ok := m.specialties[id]; ok {
			result = append(result, *sp)
		}
	}
	return result, nil
}

func (m *mockSpecialtyRepo) Update(_ context.Context, specialty *model.Specialty) error {
	m.specialties[specialty.SpecialtyID] = specialty
	return nil
}

func (m *mockSpecialtyRepo) Delete(_ context.Context, id string) error {
	delete(m.specialties, id)
	return nil
}

// ── Mock VacationRepository ──

type mockVacationRepo struct {
	requests map[string]*model.VacationRequest
	seq      int
}

func newMockVacationRepo() *mockVacationRepo {
	return &mockVacationRepo{requests: make(map[string]*model.VacationRequest)}
}

func (m *mockVacationRepo) Create(_ context.Context, request *model.VacationRequest) error {
	if request.StartDate.IsZero() || request.EndDate.IsZero() {
		return model.ErrVacationDatesRequired
	}
	if request.VacationRequestID == "" {
		m.seq++
		request.VacationRequestID = fmt.Sprintf("vac-%d", m.seq)
	}
	m.requests[request.VacationRequestID] = request
	return nil
}

func (m *mockVacationRepo) GetByID(_ context.Context, id string) (*model.VacationRequest, error) {
	if v, ok := m.requests[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVacationRepo) Update(_ context.Context, request *model.VacationRequest) error {
	m.requests[request.VacationRequestID] = request
	return nil
}

func (m *mockVacationRepo) ListByEmployee(_ context.Context, employeeID string, limit int) ([]model.VacationRequest, error) {
	var result []model.VacationRequest
	for _, v := range m.requests {
		if v.EmployeeID == employeeID {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.After(result[j].StartDate) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockVacationRepo) ListByEmployeeAndYear(_ context.Context, employeeID string, year int, statuses []model.VacationStatus) ([]model.VacationRequest, error) {
	var result []model.VacationRequest
	for _, v := range m.requests {
		if v.EmployeeID != employeeID || v.StartDate.Year() != year {
			continue
		}
		if !statusIn(v.Status, statuses) {
			continue
		}
		result = append(result, *v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (m *mockVacationRepo) SumDaysTaken(_ context.Context, employeeID string, year int) (int, error) {
	return m.sumDays(employeeID, year, "", []model.VacationStatus{
		model.VacationApproved, model.VacationInProgress,
	}), nil
}

func (m *mockVacationRepo) SumDaysCommitted(_ context.Context, employeeID string, year int, excludeID string) (int, error) {
	return m.sumDays(employeeID, year, excludeID, []model.VacationStatus{
		model.VacationApproved, model.VacationInProgress, model.VacationCompleted,
	}), nil
}

func (m *mockVacationRepo) sumDays(employeeID string, year int, excludeID string, statuses []model.VacationStatus) int {
	total := 0
	for _, v := range m.requests {
		if v.EmployeeID != employeeID || v.StartDate.Year() != year {
			continue
		}
		if excludeID != "" && v.VacationRequestID == excludeID {
			continue
		}
		if statusIn(v.Status, statuses) {
			total += v.RequestedDays
		}
	}
	return total
}

func statusIn(status model.VacationStatus, statuses []model.VacationStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ── Mock DocumentRepository ──

type mockDocumentRepo struct {
	documents map[string]*model.Document
	seq       int
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{documents: make(map[string]*model.Document)}
}

func (m *mockDocumentRepo) Create(_ context.Context, document *model.Document) error {
	if document.DocumentID == "" {
		m.seq++
		document.DocumentID = fmt.Sprintf("doc-%d", m.seq)
	}
	m.documents[document.DocumentID] = document
	return nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id string) (*model.Document, error) {
	if d, ok := m.documents[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDocumentRepo) ListByEmployee(_ context.Context, employeeID string, filters *repository.DocumentListFilters) ([]model.Document, error) {
	var result []model.Document
	for _, d := range m.documents {
		if d.EmployeeID != employeeID {
			continue
		}
		if filters != nil {
			if filters.Type != "" && d.Type != filters.Type {
				continue
			}
			if filters.Search != "" {
				s := strings.ToLower(filters.Search)
				if !strings.Contains(strings.ToLower(d.Name), s) &&
					!strings.Contains(strings.ToLower(d.Description), s) {
					continue
				}
			}
		}
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UploadedAt.After(result[j].UploadedAt) })
	return result, nil
}

func (m *mockDocumentRepo) Delete(_ context.Context, id string) error {
	delete(m.documents, id)
	return nil
}

// ── 测试用仓库聚合 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	account   *mockAccountRepo
	employee  *mockEmployeeRepo
	specialty *mockSpecialtyRepo
	vacation  *mockVacationRepo
	document  *mockDocumentRepo
}

func newTestRepos() *testRepos {
	account := newMockAccountRepo()
	employee := newMockEmployeeRepo()
	employee.accounts = account
	return &testRepos{
		account:   account,
		employee:  employee,
		specialty: newMockSpecialtyRepo(),
		vacation:  newMockVacationRepo(),
		document:  newMockDocumentRepo(),
	}
}

// toRepository db 为 nil 时 Transaction 直接执行回调，适合单测
func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Account:   r.account,
		Employee:  r.employee,
		Specialty: r.specialty,
		Vacation:  r.vacation,
		Document:  r.document,
	}
}

// ── Mock storage.Store ──

type mockStore struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newMockStore() *mockStore {
	return &mockStore{saved: make(map[string][]byte)}
}

func (m *mockStore) Save(category, filename string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	path := category + "/" + filename
	m.saved[path] = data
	return path, nil
}

func (m *mockStore) Delete(path string) error {
	delete(m.saved, path)
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStore) URL(path string) string {
	return "/media/" + path
}
