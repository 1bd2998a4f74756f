package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	productrepo "github.com/ernitinjai/meenicode-pos/repository/product"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/ernitinjai/meenicode-pos/utils/logger"
	validatorx "github.com/ernitinjai/meenicode-pos/utils/validator"
	"go.uber.org/zap"
)

// InventoryApp is the inventory screen's view-model. It owns the
// authoritative local copy of the product collection plus the transient
// view state, derives the visible page from them, and reconciles every
// mutation with the remote store before touching local state.
type InventoryApp interface {
	Load(ctx context.Context) error
	Status() constant.InventoryStatus
	Failure() string
	View() (*model.InventoryView, error)
	SetSearchTerm(term string)
	SetCategory(category string)
	SortBy(key model.SortKey) error
	SetPage(page int)
	Select(id uint64) (*model.Product, error)
	ClearSelection()
	Create(ctx context.Context, draft *model.ProductDraft) (*model.Product, error)
	UpdateSelected(ctx context.Context, draft *model.ProductDraft) (*model.Product, error)
	DeleteSelected(ctx context.Context) error
	Close()
}

type inventoryAppImpl struct {
	mu          sync.Mutex
	productRepo productrepo.ProductRepository

	status   constant.InventoryStatus
	failure  string
	products []model.Product
	state    model.InventoryViewState

	selectedID   uint64
	hasSelection bool

	// inflight blocks a second mutation while one is outstanding; create
	// is not idempotent, so double submission must be impossible.
	inflight bool
	closed   bool
}

func NewInventoryApp(productRepo productrepo.ProductRepository, itemsPerPage int) InventoryApp {
	if itemsPerPage <= 0 {
		itemsPerPage = constant.DefaultItemsPerPage
	}
	return &inventoryAppImpl{
		productRepo: productRepo,
		status:      constant.InventoryLoading,
		state: model.InventoryViewState{
			Sort: model.SortConfig{
				Key:       model.SortByName,
				Direction: constant.SortAscending,
			},
			CurrentPage:  1,
			ItemsPerPage: itemsPerPage,
		},
	}
}

// Load fetches the collection from the remote store. It moves the screen
// to Ready on success or Failed on error, never both. Calling it again
// acts as a refresh.
func (s *inventoryAppImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrNotReady)
	}
	s.status = constant.InventoryLoading
	s.mu.Unlock()

	items, err := s.productRepo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Screen torn down while the request was in flight; discard.
		return nil
	}
	if err != nil {
		logger.Error("[Load] err productRepo.List", zap.String("error", err.Error()))
		s.status = constant.InventoryFailed
		s.failure = err.Error()
		s.products = nil
		return err
	}

	s.products = items
	s.status = constant.InventoryReady
	s.failure = ""
	s.normalizePageLocked()
	return nil
}

func (s *inventoryAppImpl) Status() constant.InventoryStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *inventoryAppImpl) Failure() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// View derives the visible page: category filter, search filter, stable
// sort, then pagination.
func (s *inventoryAppImpl) View() (*model.InventoryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != constant.InventoryReady {
		if s.failure != "" {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrNotReady, s.failure)
		}
		return nil, errors.SetCustomError(constant.ErrNotReady)
	}

	filtered := s.filteredLocked()
	sorted := sortProducts(filtered, s.state.Sort)
	items, total := paginate(sorted, s.state.CurrentPage, s.state.ItemsPerPage)

	return &model.InventoryView{
		Items:      items,
		TotalItems: len(sorted),
		TotalPages: total,
		State:      s.state,
		Categories: categories(s.products),
	}, nil
}

func (s *inventoryAppImpl) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchTerm = term
	s.normalizePageLocked()
}

// SetCategory filters to one exact category; the empty string means all.
func (s *inventoryAppImpl) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
	s.normalizePageLocked()
}

// SortBy applies the toggle rule: the active key flips direction, a new
// key starts ascending.
func (s *inventoryAppImpl) SortBy(key model.SortKey) error {
	if _, ok := model.FieldByKey(key); !ok {
		return errors.SetCustomErrorWithDetail(constant.ErrValidation, fmt.Sprintf("unknown sort key %q", key))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Sort.Key == key {
		if s.state.Sort.Direction == constant.SortAscending {
			s.state.Sort.Direction = constant.SortDescending
		} else {
			s.state.Sort.Direction = constant.SortAscending
		}
		return nil
	}
	s.state.Sort = model.SortConfig{Key: key, Direction: constant.SortAscending}
	return nil
}

// SetPage clamps an explicit page request into [1, totalPages].
func (s *inventoryAppImpl) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := totalPages(len(s.filteredLocked()), s.state.ItemsPerPage)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.state.CurrentPage = page
}

func (s *inventoryAppImpl) Select(id uint64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.selectedID = id
			s.hasSelection = true
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, errors.SetCustomError(constant.ErrNotFound)
}

func (s *inventoryAppImpl) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = 0
	s.hasSelection = false
}

// Create validates the draft locally, then confirms with the server before
// touching the collection. On failure the collection is untouched and the
// caller keeps the draft for a manual retry.
func (s *inventoryAppImpl) Create(ctx context.Context, draft *model.ProductDraft) (*model.Product, error) {
	if err := validatorx.ValidateStruct(draft); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.Describe(err))
	}

	if err := s.beginMutation(); err != nil {
		return nil, err
	}
	defer s.endMutation()

	created, err := s.productRepo.Create(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Error("[Create] err productRepo.Create", zap.String("error", err.Error()))
		return nil, err
	}
	if s.closed {
		return created, nil
	}
	s.products = append(s.products, *created)
	return created, nil
}

// UpdateSelected sends a full-record replace for the selected product and
// stores the server's response; the server is the source of truth for the
// final values even when they differ from what was submitted.
func (s *inventoryAppImpl) UpdateSelected(ctx context.Context, draft *model.ProductDraft) (*model.Product, error) {
	if err := validatorx.ValidateStruct(draft); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.Describe(err))
	}

	s.mu.Lock()
	if !s.hasSelection {
		s.mu.Unlock()
		return nil, errors.SetCustomError(constant.ErrNoSelection)
	}
	id := s.selectedID
	s.mu.Unlock()

	if err := s.beginMutation(); err != nil {
		return nil, err
	}
	defer s.endMutation()

	updated, err := s.productRepo.Update(ctx, id, draft.ToProduct(id))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Error("[UpdateSelected] err productRepo.Update",
			zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, err
	}
	if s.closed {
		return updated, nil
	}
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = *updated
			break
		}
	}
	return updated, nil
}

// DeleteSelected removes the selected product after server confirmation
// and closes the selection referencing it.
func (s *inventoryAppImpl) DeleteSelected(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasSelection {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrNoSelection)
	}
	id := s.selectedID
	s.mu.Unlock()

	if err := s.beginMutation(); err != nil {
		return err
	}
	defer s.endMutation()

	err := s.productRepo.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Error("[DeleteSelected] err productRepo.Delete",
			zap.Uint64("id", id), zap.String("error", err.Error()))
		return err
	}
	if s.closed {
		return nil
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.selectedID = 0
	s.hasSelection = false
	s.normalizePageLocked()
	return nil
}

// Close tears the screen down. In-flight responses arriving afterwards are
// discarded without mutating state.
func (s *inventoryAppImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *inventoryAppImpl) beginMutation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != constant.InventoryReady {
		return errors.SetCustomError(constant.ErrNotReady)
	}
	if s.inflight {
		return errors.SetCustomError(constant.ErrOperationPending)
	}
	s.inflight = true
	return nil
}

func (s *inventoryAppImpl) endMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = false
}

func (s *inventoryAppImpl) filteredLocked() []model.Product {
	items := filterByCategory(s.products, s.state.SelectedCategory)
	return filterBySearch(items, s.state.SearchTerm)
}

// normalizePageLocked resets the cursor to the first page whenever the
// filtered result no longer reaches the current one; without the reset a
// shrunken filter would show an empty page silently.
func (s *inventoryAppImpl) normalizePageLocked() {
	total := totalPages(len(s.filteredLocked()), s.state.ItemsPerPage)
	if s.state.CurrentPage > total || s.state.CurrentPage < 1 {
		s.state.CurrentPage = 1
	}
}
