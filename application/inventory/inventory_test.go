package inventory_test

import (
	"context"
	"sync"
	"testing"

	appinventory "github.com/ernitinjai/meenicode-pos/application/inventory"
	"github.com/ernitinjai/meenicode-pos/constant"
	productmocks "github.com/ernitinjai/meenicode-pos/mocks/repository/product"
	"github.com/ernitinjai/meenicode-pos/model"
	cerr "github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Apple", Brand: "Fresh Farms", Barcode: "111", Unit: "kg", Category: "Fruit", UnitQuantity: 1, SalePrice: 2.5, PurchasePrice: 1.5, CurrentStock: 10},
		{ID: 2, Name: "Banana", Brand: "Fresh Farms", Barcode: "222", Unit: "kg", Category: "Fruit", UnitQuantity: 1, SalePrice: 1.2, PurchasePrice: 0.8, CurrentStock: 5},
	}
}

func validDraft() *model.ProductDraft {
	return &model.ProductDraft{
		Name:         "Cheese",
		Brand:        "Dairyland",
		Barcode:      "555",
		Unit:         "pcs",
		Category:     "Dairy",
		UnitQuantity: 1,
		SalePrice:    6.5,
		CurrentStock: 8,
	}
}

func loadedApp(t *testing.T, products []model.Product) (appinventory.InventoryApp, *productmocks.ProductRepository) {
	repo := productmocks.NewProductRepository(t)
	repo.On("List", mock.Anything).Return(products, nil).Once()

	app := appinventory.NewInventoryApp(repo, 5)
	require.NoError(t, app.Load(context.Background()))
	require.Equal(t, constant.InventoryReady, app.Status())
	return app, repo
}

func TestInventoryApp_Load(t *testing.T) {
	t.Run("success: enters Ready with the fetched collection", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		view, err := app.View()
		require.NoError(t, err)
		assert.Equal(t, 2, view.TotalItems)
		assert.Equal(t, 1, view.TotalPages)
		assert.Empty(t, app.Failure())
	})

	t.Run("failure: enters Failed and blocks the view", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("List", mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrNetwork)).
			Once()

		app := appinventory.NewInventoryApp(repo, 5)
		err := app.Load(context.Background())
		require.Error(t, err)

		assert.Equal(t, constant.InventoryFailed, app.Status())
		assert.NotEmpty(t, app.Failure())

		_, err = app.View()
		assert.True(t, cerr.IsType(err, constant.ErrNotReady))
	})

	t.Run("reload recovers from a failed fetch", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("List", mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrNetwork)).
			Once()
		repo.On("List", mock.Anything).
			Return(fixtureProducts(), nil).
			Once()

		app := appinventory.NewInventoryApp(repo, 5)
		require.Error(t, app.Load(context.Background()))
		require.NoError(t, app.Load(context.Background()))
		assert.Equal(t, constant.InventoryReady, app.Status())
	})
}

func TestInventoryApp_SearchAndPaging(t *testing.T) {
	t.Run("search narrows the view", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		app.SetSearchTerm("ban")
		view, err := app.View()
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, uint64(2), view.Items[0].ID)
	})

	t.Run("shrinking the filter resets the page to 1", func(t *testing.T) {
		products := make([]model.Product, 0, 12)
		for i := 1; i <= 12; i++ {
			category := "Fruit"
			if i <= 3 {
				category = "Dairy"
			}
			products = append(products, model.Product{ID: uint64(i), Name: "Item", Category: category})
		}
		app, _ := loadedApp(t, products)

		app.SetPage(3)
		view, err := app.View()
		require.NoError(t, err)
		require.Equal(t, 3, view.State.CurrentPage)

		// 12 filtered items drop to 3; page 3 no longer exists.
		app.SetCategory("Dairy")
		view, err = app.View()
		require.NoError(t, err)
		assert.Equal(t, 1, view.State.CurrentPage)
		assert.Equal(t, 3, view.TotalItems)
		assert.Equal(t, 1, view.TotalPages)
	})

	t.Run("explicit page request clamps into range", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		app.SetPage(99)
		view, err := app.View()
		require.NoError(t, err)
		assert.Equal(t, 1, view.State.CurrentPage)

		app.SetPage(-1)
		view, err = app.View()
		require.NoError(t, err)
		assert.Equal(t, 1, view.State.CurrentPage)
	})
}

func TestInventoryApp_SortToggle(t *testing.T) {
	app, _ := loadedApp(t, fixtureProducts())

	// The screen starts sorted by name ascending.
	view, err := app.View()
	require.NoError(t, err)
	require.Equal(t, model.SortByName, view.State.Sort.Key)
	require.Equal(t, constant.SortAscending, view.State.Sort.Direction)

	// Sorting the active key flips direction.
	require.NoError(t, app.SortBy(model.SortByName))
	view, _ = app.View()
	assert.Equal(t, constant.SortDescending, view.State.Sort.Direction)

	// Flipping twice returns to the original direction.
	require.NoError(t, app.SortBy(model.SortByName))
	view, _ = app.View()
	assert.Equal(t, constant.SortAscending, view.State.Sort.Direction)

	// A new key always starts ascending.
	require.NoError(t, app.SortBy(model.SortByName))
	require.NoError(t, app.SortBy(model.SortBySalePrice))
	view, _ = app.View()
	assert.Equal(t, model.SortBySalePrice, view.State.Sort.Key)
	assert.Equal(t, constant.SortAscending, view.State.Sort.Direction)

	// Unknown keys are rejected instead of silently ignored.
	err = app.SortBy(model.SortKey("image_urls"))
	assert.True(t, cerr.IsType(err, constant.ErrValidation))
}

func TestInventoryApp_Create(t *testing.T) {
	t.Run("success: appends the server-confirmed record", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		draft := validDraft()
		created := draft.ToProduct(7)
		repo.On("Create", mock.Anything, draft).Return(created, nil).Once()

		got, err := app.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.ID)

		view, err := app.View()
		require.NoError(t, err)
		assert.Equal(t, 3, view.TotalItems)
	})

	t.Run("validation failure: no request is sent", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		draft := validDraft()
		draft.Name = ""
		_, err := app.Create(context.Background(), draft)
		assert.True(t, cerr.IsType(err, constant.ErrValidation))

		view, _ := app.View()
		assert.Equal(t, 2, view.TotalItems)
	})

	t.Run("network failure: collection is untouched", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		draft := validDraft()
		repo.On("Create", mock.Anything, draft).
			Return(nil, cerr.SetCustomError(constant.ErrNetwork)).
			Once()

		_, err := app.Create(context.Background(), draft)
		assert.True(t, cerr.IsType(err, constant.ErrNetwork))

		view, _ := app.View()
		assert.Equal(t, 2, view.TotalItems)
	})

	t.Run("a second mutation while one is in flight is rejected", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		draft := validDraft()
		entered := make(chan struct{})
		release := make(chan struct{})
		repo.On("Create", mock.Anything, draft).
			Run(func(args mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(draft.ToProduct(7), nil).
			Once()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.Create(context.Background(), draft)
			assert.NoError(t, err)
		}()

		<-entered
		_, err := app.Create(context.Background(), validDraft())
		assert.True(t, cerr.IsType(err, constant.ErrOperationPending))

		close(release)
		wg.Wait()

		view, _ := app.View()
		assert.Equal(t, 3, view.TotalItems)
	})
}

func TestInventoryApp_UpdateSelected(t *testing.T) {
	t.Run("success: the server response wins over the submitted values", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		selected, err := app.Select(2)
		require.NoError(t, err)
		require.Equal(t, "Banana", selected.Name)

		draft := validDraft()
		draft.CurrentStock = 4
		serverCopy := draft.ToProduct(2)
		serverCopy.CurrentStock = 3
		repo.On("Update", mock.Anything, uint64(2), draft.ToProduct(2)).
			Return(serverCopy, nil).
			Once()

		got, err := app.UpdateSelected(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.CurrentStock)

		fresh, err := app.Select(2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), fresh.CurrentStock)
	})

	t.Run("no selection", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		_, err := app.UpdateSelected(context.Background(), validDraft())
		assert.True(t, cerr.IsType(err, constant.ErrNoSelection))
	})

	t.Run("clearing the selection detargets the mutation", func(t *testing.T) {
		app, _ := loadedApp(t, fixtureProducts())

		_, err := app.Select(1)
		require.NoError(t, err)
		app.ClearSelection()

		_, err = app.UpdateSelected(context.Background(), validDraft())
		assert.True(t, cerr.IsType(err, constant.ErrNoSelection))
	})

	t.Run("target vanished server-side: collection is untouched", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		_, err := app.Select(1)
		require.NoError(t, err)

		draft := validDraft()
		repo.On("Update", mock.Anything, uint64(1), draft.ToProduct(1)).
			Return(nil, cerr.SetCustomError(constant.ErrNotFound)).
			Once()

		_, err = app.UpdateSelected(context.Background(), draft)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))

		unchanged, err := app.Select(1)
		require.NoError(t, err)
		assert.Equal(t, "Apple", unchanged.Name)
	})
}

func TestInventoryApp_DeleteSelected(t *testing.T) {
	t.Run("success: removes the entry and drops the selection", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		_, err := app.Select(2)
		require.NoError(t, err)

		repo.On("Delete", mock.Anything, uint64(2)).Return(nil).Once()
		require.NoError(t, app.DeleteSelected(context.Background()))

		view, err := app.View()
		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalItems)

		err = app.DeleteSelected(context.Background())
		assert.True(t, cerr.IsType(err, constant.ErrNoSelection))
	})

	t.Run("failure: collection is untouched", func(t *testing.T) {
		app, repo := loadedApp(t, fixtureProducts())

		_, err := app.Select(1)
		require.NoError(t, err)

		repo.On("Delete", mock.Anything, uint64(1)).
			Return(cerr.SetCustomError(constant.ErrNetwork)).
			Once()

		err = app.DeleteSelected(context.Background())
		assert.True(t, cerr.IsType(err, constant.ErrNetwork))

		view, _ := app.View()
		assert.Equal(t, 2, view.TotalItems)
	})
}

func TestInventoryApp_Close(t *testing.T) {
	app, _ := loadedApp(t, fixtureProducts())

	app.Close()

	err := app.Load(context.Background())
	assert.True(t, cerr.IsType(err, constant.ErrNotReady))

	_, err = app.Create(context.Background(), validDraft())
	assert.True(t, cerr.IsType(err, constant.ErrNotReady))
}
