package reviewService

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(page *PageEnvelope) []uint {
	out := make([]uint, 0, len(page.Data))
	for _, row := range page.Data {
		out = append(out, row.ReviewRequestID)
	}
	return out
}

func TestNormalize(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q, err := Normalize(ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.Size)
		assert.Equal(t, "createdAt", q.SortBy)
		assert.False(t, q.IsAsc)
		assert.False(t, q.HasStat)
		assert.Equal(t, "review_requests.created_at DESC, review_requests.id ASC", q.OrderClause())
	})

	t.Run("OutOfRangeValues", func(t *testing.T) {
		q, err := Normalize(ListQuery{Page: -3, Size: 1000, SortBy: "password"})
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.Size)
		assert.Equal(t, "createdAt", q.SortBy)
		assert.Equal(t, 0, q.Offset())
	})

	t.Run("ValidValues", func(t *testing.T) {
		q, err := Normalize(ListQuery{Page: 3, Size: 20, SortBy: "title", IsAsc: true, Status: "unsolve"})
		require.NoError(t, err)
		assert.Equal(t, 40, q.Offset())
		assert.True(t, q.HasStat)
		assert.Equal(t, models.StatusUnsolve, q.Status)
		assert.Equal(t, "review_requests.title ASC, review_requests.id ASC", q.OrderClause())
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		_, err := Normalize(ListQuery{Status: "DONE"})
		require.Error(t, err)
		assert.Equal(t, utils.KindInvalidParameter, utils.KindOf(err))
	})
}

func TestListRequests_Scenario(t *testing.T) {
	db := newTestDB(t)
	s := seedScenario(t, db)

	t.Run("Authored", func(t *testing.T) {
		page, err := ListRequests(db, s.user.ID, ScopeAuthored, ListQuery{Page: 1, Size: 10, SortBy: "createdAt", IsAsc: true})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)

		row := page.Data[0]
		assert.Equal(t, s.request.ID, row.ReviewRequestID)
		assert.Equal(t, "user", row.Username)
		assert.Equal(t, "user_nick", row.Nickname)
		assert.Equal(t, "title", row.Title)
		assert.Equal(t, "content of title", row.Content)
		assert.Equal(t, "JAVA", row.LanguageName)
		assert.Equal(t, models.StatusSolve, row.Status)
		assert.Equal(t, int64(2), row.CommentCount)
		assert.True(t, row.CreatedAt.Equal(s.request.CreatedAt))

		assert.Equal(t, int64(1), page.TotalElements)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Size)
	})

	t.Run("Received", func(t *testing.T) {
		page, err := ListRequests(db, s.reviewer.ID, ScopeReceived, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, []uint{s.request.ID}, ids(page))
		assert.Equal(t, int64(2), page.Data[0].CommentCount)
	})

	t.Run("ScopesDoNotLeak", func(t *testing.T) {
		page, err := ListRequests(db, s.user.ID, ScopeReceived, ListQuery{})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
		assert.Equal(t, 0, page.TotalPages)

		page, err = ListRequests(db, s.reviewer.ID, ScopeAuthored, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.TotalElements)
	})

	t.Run("SolvedRequestLeavesUnsolveFilter", func(t *testing.T) {
		page, err := ListRequests(db, s.user.ID, ScopeAuthored, ListQuery{Status: "UNSOLVE"})
		require.NoError(t, err)
		assert.Empty(t, page.Data)

		page, err = ListRequests(db, s.user.ID, ScopeAuthored, ListQuery{Status: "SOLVE"})
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})
}

func TestListRequests_Failures(t *testing.T) {
	db := newTestDB(t)
	s := seedScenario(t, db)

	t.Run("MissingCaller", func(t *testing.T) {
		_, err := ListRequests(db, 0, ScopeAuthored, ListQuery{})
		assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
	})

	t.Run("UnknownCaller", func(t *testing.T) {
		_, err := ListRequests(db, 999, ScopeAuthored, ListQuery{})
		assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := ListRequests(db, s.user.ID, ScopeAuthored, ListQuery{Status: "SOLVED"})
		assert.Equal(t, utils.KindInvalidParameter, utils.KindOf(err))
	})

	t.Run("UnknownScope", func(t *testing.T) {
		_, err := ListRequests(db, s.user.ID, Scope(42), ListQuery{})
		assert.Equal(t, utils.KindInvalidParameter, utils.KindOf(err))
	})
}

func TestListRequests_Pagination(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user", models.RoleUser)
	reviewer := createUser(t, db, "reviewer", models.RoleReviewer)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		createRequest(t, db, user, reviewer, fmt.Sprintf("request %02d", i), base.Add(time.Duration(i)*time.Hour))
	}

	cases := []struct {
		page, size int
		wantLen    int
		wantPages  int
		wantSize   int
	}{
		{page: 1, size: 10, wantLen: 10, wantPages: 3, wantSize: 10},
		{page: 3, size: 10, wantLen: 3, wantPages: 3, wantSize: 10},
		{page: 4, size: 10, wantLen: 0, wantPages: 3, wantSize: 10},
		{page: 2, size: 7, wantLen: 7, wantPages: 4, wantSize: 7},
		{page: 4, size: 7, wantLen: 2, wantPages: 4, wantSize: 7},
		{page: 1, size: 23, wantLen: 23, wantPages: 1, wantSize: 23},
		{page: 0, size: 0, wantLen: 10, wantPages: 3, wantSize: 10},
		{page: 1, size: 101, wantLen: 10, wantPages: 3, wantSize: 10},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("page%d_size%d", tc.page, tc.size), func(t *testing.T) {
			page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{Page: tc.page, Size: tc.size})
			require.NoError(t, err)
			assert.Equal(t, int64(23), page.TotalElements)
			assert.Equal(t, tc.wantPages, page.TotalPages)
			assert.Equal(t, tc.wantSize, page.Size)
			assert.Len(t, page.Data, tc.wantLen)
		})
	}

	t.Run("HugePageNumberIsPastTheEnd", func(t *testing.T) {
		for _, p := range []int{math.MaxInt / 5, math.MaxInt/10 + 1, math.MaxInt} {
			page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{Page: p, Size: 10})
			require.NoError(t, err)
			assert.Empty(t, page.Data, "page %d", p)
			assert.Equal(t, p, page.Page)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, int64(23), page.TotalElements)
		}
	})

	t.Run("PagesAreDisjoint", func(t *testing.T) {
		seen := map[uint]bool{}
		for p := 1; p <= 3; p++ {
			page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{Page: p, Size: 10, IsAsc: true})
			require.NoError(t, err)
			for _, id := range ids(page) {
				assert.False(t, seen[id], "request %d listed twice", id)
				seen[id] = true
			}
		}
		assert.Len(t, seen, 23)
	})
}

func TestListRequests_Sorting(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user", models.RoleUser)
	reviewer := createUser(t, db, "reviewer", models.RoleReviewer)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// inserted out of chronological order so id order differs from time order
	r2 := createRequest(t, db, user, reviewer, "b", base.Add(2*time.Hour))
	r0 := createRequest(t, db, user, reviewer, "c", base)
	r1 := createRequest(t, db, user, reviewer, "a", base.Add(time.Hour))

	t.Run("CreatedAtAscendingAndDescendingAreReversed", func(t *testing.T) {
		asc, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{SortBy: "createdAt", IsAsc: true})
		require.NoError(t, err)
		desc, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{SortBy: "createdAt"})
		require.NoError(t, err)

		assert.Equal(t, []uint{r0.ID, r1.ID, r2.ID}, ids(asc))
		assert.Equal(t, []uint{r2.ID, r1.ID, r0.ID}, ids(desc))
	})

	t.Run("Title", func(t *testing.T) {
		page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{SortBy: "title", IsAsc: true})
		require.NoError(t, err)
		assert.Equal(t, []uint{r1.ID, r2.ID, r0.ID}, ids(page))
	})

	t.Run("UnknownKeyFallsBackToCreatedAt", func(t *testing.T) {
		page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{SortBy: "1; DROP TABLE users", IsAsc: true})
		require.NoError(t, err)
		assert.Equal(t, []uint{r0.ID, r1.ID, r2.ID}, ids(page))
	})

	t.Run("CommentCount", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := AddComment(db, r0.ID, user.ID, "hello")
			require.NoError(t, err)
		}
		_, err := AddComment(db, r2.ID, reviewer.ID, "hi")
		require.NoError(t, err)

		page, err := ListRequests(db, user.ID, ScopeAuthored, ListQuery{SortBy: "commentCount"})
		require.NoError(t, err)
		assert.Equal(t, []uint{r0.ID, r2.ID, r1.ID}, ids(page))
		assert.Equal(t, []int64{3, 1, 0}, []int64{page.Data[0].CommentCount, page.Data[1].CommentCount, page.Data[2].CommentCount})
	})

	t.Run("TiesBrokenByIDAscending", func(t *testing.T) {
		other := createUser(t, db, "other", models.RoleUser)
		same := base.Add(24 * time.Hour)
		t1 := createRequest(t, db, other, reviewer, "tie", same)
		t2 := createRequest(t, db, other, reviewer, "tie", same)
		t3 := createRequest(t, db, other, reviewer, "tie", same)

		for _, isAsc := range []bool{true, false} {
			page, err := ListRequests(db, other.ID, ScopeAuthored, ListQuery{SortBy: "createdAt", IsAsc: isAsc})
			require.NoError(t, err)
			assert.Equal(t, []uint{t1.ID, t2.ID, t3.ID}, ids(page))
		}

		// repeated paging over ties is stable
		first, err := ListRequests(db, other.ID, ScopeAuthored, ListQuery{Size: 2, SortBy: "title"})
		require.NoError(t, err)
		second, err := ListRequests(db, other.ID, ScopeAuthored, ListQuery{Page: 2, Size: 2, SortBy: "title"})
		require.NoError(t, err)
		assert.Equal(t, []uint{t1.ID, t2.ID}, ids(first))
		assert.Equal(t, []uint{t3.ID}, ids(second))
	})
}

func TestListRequests_CommentCountTracksMutations(t *testing.T) {
	db := newTestDB(t)
	s := seedScenario(t, db)

	count := func() int64 {
		page, err := ListRequests(db, s.user.ID, ScopeAuthored, ListQuery{})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		return page.Data[0].CommentCount
	}

	require.Equal(t, int64(2), count())

	comment, err := AddComment(db, s.request.ID, s.user.ID, "one more")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count())

	require.NoError(t, DeleteComment(db, comment.ID, s.user.ID))
	assert.Equal(t, int64(2), count())
}

func TestListRequests_AnsweringRemovesFromUnsolve(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user", models.RoleUser)
	reviewer := createUser(t, db, "reviewer", models.RoleReviewer)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	first := createRequest(t, db, user, reviewer, "first", base)
	second := createRequest(t, db, user, reviewer, "second", base.Add(time.Minute))

	unsolved := func() []uint {
		page, err := ListRequests(db, reviewer.ID, ScopeReceived, ListQuery{Status: "UNSOLVE", IsAsc: true})
		require.NoError(t, err)
		for _, row := range page.Data {
			assert.Equal(t, models.StatusUnsolve, row.Status)
		}
		return ids(page)
	}

	assert.Equal(t, []uint{first.ID, second.ID}, unsolved())

	_, err := AnswerRequest(db, first.ID, reviewer.ID, "done", 3)
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID}, unsolved())
}
