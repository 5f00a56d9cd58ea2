//go:build e2e

package book_test

import (
	"net/http"
	"testing"

	"book-rental-tracker/internal/handler/dto/response"
	"book-rental-tracker/tests/common/dbtest"
	"book-rental-tracker/tests/common/httptest"
	"book-rental-tracker/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	searchNameURL         = "/api/books/search/name"
	searchRentURL         = "/api/books/search/rent"
	searchCategoryRentURL = "/api/books/search/category-rent"
	allBooksURL           = "/api/books/allBooks"
	allUsersURL           = "/api/books/allUsers"
)

type BookSuite struct {
	e2e.SharedSuite
}

func (s *BookSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookSuite))
}

var ignoreID = cmpopts.IgnoreFields(response.BookResponse{}, "ID")

func (s *BookSuite) seedCatalog() {
	t := s.T()
	dbtest.CreateTestBook(t, s.DB, "War and Peace", "Fiction", 12)
	dbtest.CreateTestBook(t, s.DB, "warrior's Tale", "Fantasy", 8)
	dbtest.CreateTestBook(t, s.DB, "100% Go", "Programming", 20)
}

// =============================================================================
// TestSearchByName
// =============================================================================

func (s *BookSuite) TestSearchByName() {
	s.Run("Normal case: case-insensitive substring in storage order", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchNameURL+"?name=WAR", nil)

		var got []response.BookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := []response.BookResponse{
			{Name: "War and Peace", Category: "Fiction", RentPerDay: 12},
			{Name: "warrior's Tale", Category: "Fantasy", RentPerDay: 8},
		}
		if diff := cmp.Diff(want, got, ignoreID); diff != "" {
			t.Errorf("search result mismatch (-want +got):\n%s", diff)
		}
		for _, b := range got {
			require.NotEmpty(t, b.ID)
		}
	})

	s.Run("Normal case: LIKE wildcards are matched literally", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchNameURL+"?name=%25", nil)

		var got []response.BookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		require.Equal(t, "100% Go", got[0].Name)
	})
}

// =============================================================================
// TestSearchByRent
// =============================================================================

func (s *BookSuite) TestSearchByRent() {
	testCases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "inclusive bounds", query: "?minRent=8&maxRent=12", want: []string{"War and Peace", "warrior's Tale"}},
		{name: "exact rent", query: "?minRent=20&maxRent=20", want: []string{"100% Go"}},
		{name: "min only", query: "?minRent=13", want: []string{"100% Go"}},
		{name: "max only", query: "?maxRent=8", want: []string{"warrior's Tale"}},
		{name: "no match", query: "?minRent=21&maxRent=120", want: []string{}},
	}

	for _, tc := range testCases {
		s.Run("Normal case: "+tc.name, func() {
			t := s.T()
			s.seedCatalog()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchRentURL+tc.query, nil)

			var got []response.BookResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			names := make([]string, 0, len(got))
			for _, b := range got {
				names = append(names, b.Name)
			}
			require.Equal(t, tc.want, names)
		})
	}
}

// =============================================================================
// TestSearchByCategoryAndRent
// =============================================================================

func (s *BookSuite) TestSearchByCategoryAndRent() {
	s.Run("Normal case: category is exact, term is a substring", func() {
		t := s.T()
		s.seedCatalog()
		dbtest.CreateTestBook(t, s.DB, "Peace Talks", "Fiction", 30)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			searchCategoryRentURL+"?category=Fiction&term=peace&minRent=0&maxRent=15", nil)

		var got []response.BookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := []response.BookResponse{{Name: "War and Peace", Category: "Fiction", RentPerDay: 12}}
		if diff := cmp.Diff(want, got, ignoreID); diff != "" {
			t.Errorf("search result mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: non-numeric rent", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchCategoryRentURL+"?minRent=abc", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestListings
// =============================================================================

func (s *BookSuite) TestListings() {
	s.Run("Normal case: all books without ids", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allBooksURL, nil)

		var got []response.BookListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		httptest.AssertJSONBody(t, w)
		require.Len(t, got, 3)
		require.NotContains(t, w.Body.String(), `"id"`)
	})

	s.Run("Normal case: all users", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "alice", "alice@example.com")
		dbtest.CreateTestUser(t, s.DB, "bob", "bob@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allUsersURL, nil)

		var got []response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := []response.UserResponse{
			{Name: "alice", Email: "alice@example.com"},
			{Name: "bob", Email: "bob@example.com"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("user list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: empty tables give empty arrays", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allBooksURL, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.JSONEq(t, `[]`, w.Body.String())
	})
}
