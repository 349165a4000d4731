package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const dateLayout = "2006-01-02"

func queryString(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(q url.Values, key string) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(key, "must be an integer")
	}
	return n, nil
}

func queryUUID(q url.Values, key string) (*uuid.UUID, error) {
	v := queryString(q, key)
	if v == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, domain.NewValidationError(key, "invalid id")
	}
	return &id, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. A plain date used as
// an upper bound covers the whole day.
func queryTime(q url.Values, key string, upper bool) (*time.Time, error) {
	v := queryString(q, key)
	if v == nil {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil, domain.NewValidationError(key, "expected RFC 3339 timestamp or YYYY-MM-DD")
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseEntryFilter(q url.Values) (domain.EntryFilter, error) {
	var f domain.EntryFilter
	var err error

	if f.CategoryID, err = queryUUID(q, "category_id"); err != nil {
		return f, err
	}
	if v := queryString(q, "content_type"); v != nil {
		ct := domain.ContentType(strings.ToLower(*v))
		f.ContentType = &ct
	}
	if v := queryString(q, "source"); v != nil {
		src := domain.Source(strings.ToLower(*v))
		f.Source = &src
	}
	if f.CreatedFrom, err = queryTime(q, "from", false); err != nil {
		return f, err
	}
	if f.CreatedTo, err = queryTime(q, "to", true); err != nil {
		return f, err
	}
	if f.Limit, err = queryInt(q, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = queryInt(q, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

func parseIdeaFilter(q url.Values) (domain.IdeaFilter, error) {
	var f domain.IdeaFilter
	var err error

	if v := queryString(q, "output_type"); v != nil {
		ot := domain.OutputType(strings.ToLower(*v))
		f.OutputType = &ot
	}
	f.Status = queryString(q, "status")
	if f.Limit, err = queryInt(q, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = queryInt(q, "offset"); err != nil {
		return f, err
	}
	return f, nil
}
