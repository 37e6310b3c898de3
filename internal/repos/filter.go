package repos

// All is the category that matches every repository.
const All = "All"

type Category struct {
	Name  string
	Count int
}

// Categories lists All followed by each distinct language in first-seen order.
// Repositories without a language only count towards All.
func Categories(repos []Repository) []Category {
	cats := []Category{{Name: All, Count: len(repos)}}
	index := make(map[string]int)
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		i, ok := index[r.Language]
		if !ok {
			i = len(cats)
			index[r.Language] = i
			cats = append(cats, Category{Name: r.Language})
		}
		cats[i].Count++
	}
	return cats
}

func Filter(repos []Repository, category string) []Repository {
	if category == All || category == "" {
		return repos
	}
	out := make([]Repository, 0)
	for _, r := range repos {
		if r.Language == category {
			out = append(out, r)
		}
	}
	return out
}

// Page is one slice of a filtered listing. Start and End are zero-based and
// half-open; Number is one-based.
type Page struct {
	Items      []Repository
	Number     int
	TotalPages int
	Start, End int
	Total      int
}

func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate returns page number n (clamped into range) of size perPage.
func Paginate(repos []Repository, n, perPage int) Page {
	if perPage <= 0 {
		perPage = 10
	}
	total := len(repos)
	pages := (total + perPage - 1) / perPage
	n = max(1, min(n, pages))

	start := min((n-1)*perPage, total)
	end := min(start+perPage, total)
	return Page{
		Items:      repos[start:end],
		Number:     n,
		TotalPages: pages,
		Start:      start,
		End:        end,
		Total:      total,
	}
}

// TopTopics returns at most n topics.
func (r Repository) TopTopics(n int) []string {
	if len(r.Topics) <= n {
		return r.Topics
	}
	return r.Topics[:n]
}
