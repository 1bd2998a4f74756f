package inventory

import (
	"sort"
	"strings"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
)

// filterByCategory keeps products matching the category exactly; the empty
// string keeps everything.
func filterByCategory(items []model.Product, category string) []model.Product {
	if category == "" {
		return items
	}
	out := make([]model.Product, 0, len(items))
	for i := range items {
		if items[i].Category == category {
			out = append(out, items[i])
		}
	}
	return out
}

// filterBySearch keeps products whose stringified fields contain the term,
// case-insensitively. The declared field schema decides what "every field"
// means; numbers match via their canonical decimal form.
func filterBySearch(items []model.Product, term string) []model.Product {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]model.Product, 0, len(items))
	for i := range items {
		if matchesSearch(&items[i], needle) {
			out = append(out, items[i])
		}
	}
	return out
}

func matchesSearch(p *model.Product, needle string) bool {
	for i := range model.ProductFields {
		f := &model.ProductFields[i]
		if strings.Contains(strings.ToLower(f.SearchText(p)), needle) {
			return true
		}
	}
	return false
}

// sortProducts stable-sorts a copy; stability keeps pagination reproducible
// when values tie.
func sortProducts(items []model.Product, cfg model.SortConfig) []model.Product {
	field, ok := model.FieldByKey(cfg.Key)
	if !ok {
		return items
	}

	out := make([]model.Product, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareProducts(&out[i], &out[j], field)
		if cfg.Direction == constant.SortDescending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareProducts(a, b *model.Product, field *model.FieldDescriptor) int {
	if field.Kind == model.FieldNumber {
		av, bv := field.Number(a), field.Number(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(field.Text(a)), strings.ToLower(field.Text(b)))
}

// paginate slices one 1-indexed page out of the sorted result and reports
// the page count. An empty result still has one (empty) page so the cursor
// always has somewhere valid to sit.
func paginate(items []model.Product, page, perPage int) ([]model.Product, int) {
	total := totalPages(len(items), perPage)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []model.Product{}, total
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

func totalPages(count, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	total := (count + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	return total
}

// categories lists the distinct non-empty category values in the
// collection, sorted, for the filter control.
func categories(items []model.Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range items {
		c := items[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
