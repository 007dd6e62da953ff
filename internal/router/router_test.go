package router

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nourishnet/internal/board"
	"nourishnet/internal/listing"

	"github.com/gin-gonic/gin"
)

type fixedSuggester struct {
	text string
}

func (f fixedSuggester) Suggest(ctx context.Context, foodItems []string) string {
	return f.text
}

func newTestRouter(t *testing.T, reply string) (*gin.Engine, *board.Board) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := board.NewService(listing.NewInMemoryRepository(), fixedSuggester{text: reply}, nil, "My Restaurant")
	if err := b.Seed(listing.DemoListings()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := NewRouter(Deps{
		Board: board.NewHandler(b, board.ImageBounds{MaxWidth: 80, MaxHeight: 60}),
	})
	return r, b
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeListings(t *testing.T, w *httptest.ResponseRecorder) []listing.Listing {
	t.Helper()
	var out []listing.Listing
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode listings: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestCreateListingAppearsFirst(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := doJSON(r, http.MethodPost, "/api/listings", map[string]string{
		"name":        "Pasta Salad",
		"description": "Cold pasta with pesto",
		"quantity":    "1 tray",
		"pickup_time": "Today at 5 PM",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	available := decodeListings(t, doJSON(r, http.MethodGet, "/api/listings?status=available", nil))
	if available[0].Name != "Pasta Salad" || available[0].Restaurant != "My Restaurant" {
		t.Fatalf("expected Pasta Salad first, got %+v", available[0])
	}

	for _, l := range decodeListings(t, doJSON(r, http.MethodGet, "/api/listings?status=claimed", nil)) {
		if l.Name == "Pasta Salad" {
			t.Fatalf("new listing must not be claimed")
		}
	}
}

func TestCreateListingMissingDescription(t *testing.T) {
	r, b := newTestRouter(t, "")
	before := len(b.Snapshot().Available)

	w := doJSON(r, http.MethodPost, "/api/listings", map[string]string{
		"name":        "Pasta Salad",
		"quantity":    "1 tray",
		"pickup_time": "Today at 5 PM",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "description") {
		t.Errorf("expected notice to name the field, got %s", w.Body.String())
	}
	if after := len(b.Snapshot().Available); after != before {
		t.Fatalf("store changed on validation failure")
	}
}

func TestCreateListingMultipartImage(t *testing.T) {
	r, _ := newTestRouter(t, "")

	var img bytes.Buffer
	_ = png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 200, 100)))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "Bagels")
	_ = mw.WriteField("description", "Day-old bagels")
	_ = mw.WriteField("quantity", "12")
	_ = mw.WriteField("pickup_time", "Tomorrow 9 AM")
	fw, _ := mw.CreateFormFile("image", "bagels.png")
	_, _ = fw.Write(img.Bytes())
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/listings", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var l listing.Listing
	_ = json.Unmarshal(w.Body.Bytes(), &l)
	if !strings.HasPrefix(l.Image, "data:image/jpeg;base64,") {
		t.Fatalf("expected data URI image, got %.40q", l.Image)
	}
}

func TestClaimDeselects(t *testing.T) {
	r, b := newTestRouter(t, "")

	if w := doJSON(r, http.MethodPut, "/api/selection/1", map[string]bool{"selected": true}); w.Code != http.StatusOK {
		t.Fatalf("select: %d %s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodPost, "/api/listings/1/claim", nil); w.Code != http.StatusOK {
		t.Fatalf("claim: %d %s", w.Code, w.Body.String())
	}

	if sel := b.Selected(); len(sel) != 0 {
		t.Fatalf("claimed listing still selected: %v", sel)
	}

	if w := doJSON(r, http.MethodPost, "/api/listings/1/claim", nil); w.Code != http.StatusOK {
		t.Fatalf("re-claim should be idempotent, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/listings/zzz/claim", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSelectionErrors(t *testing.T) {
	r, _ := newTestRouter(t, "")

	if w := doJSON(r, http.MethodPut, "/api/selection/3", map[string]bool{"selected": true}); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for claimed listing, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/api/selection/1", map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without selected flag, got %d", w.Code)
	}
}

func TestMealIdeaFlow(t *testing.T) {
	r, b := newTestRouter(t, "# Idea\n* step one")

	if w := doJSON(r, http.MethodPost, "/api/meal-idea", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with empty selection, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/meal-idea", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any request, got %d", w.Code)
	}

	doJSON(r, http.MethodPut, "/api/selection/4", map[string]bool{"selected": true})
	doJSON(r, http.MethodPut, "/api/selection/2", map[string]bool{"selected": true})

	w := doJSON(r, http.MethodPost, "/api/meal-idea", nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}

	b.Wait()

	w = doJSON(r, http.MethodGet, "/api/meal-idea", nil)
	var got struct {
		Loading bool     `json:"loading"`
		Text    *string  `json:"text"`
		Items   []string `json:"items"`
		Blocks  []struct {
			Kind  string `json:"kind"`
			Level int    `json:"level"`
			Text  string `json:"text"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Loading || got.Text == nil || *got.Text != "# Idea\n* step one" {
		t.Fatalf("unexpected result %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0] != "Steamed Vegetable Medley" {
		t.Errorf("unexpected items %v", got.Items)
	}
	if len(got.Blocks) != 2 || got.Blocks[0].Kind != "heading" || got.Blocks[1].Kind != "list_item" {
		t.Errorf("unexpected blocks %+v", got.Blocks)
	}

	if w := doJSON(r, http.MethodDelete, "/api/meal-idea", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if b.Suggestion() != nil {
		t.Fatalf("display should be closed")
	}
}

func TestSetViewEndpoint(t *testing.T) {
	r, b := newTestRouter(t, "")

	if w := doJSON(r, http.MethodPut, "/api/view", map[string]string{"view": "post"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if b.Snapshot().View != board.ViewPost {
		t.Errorf("view not switched")
	}
	if w := doJSON(r, http.MethodPut, "/api/view", map[string]string{"view": "admin"}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown view, got %d", w.Code)
	}
}

func TestIndexPage(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := doJSON(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{"Available for Pickup", "Tomato Basil Soup", "Recently Claimed", "https://picsum.photos/seed/soup/400/300"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageFormValidationNotice(t *testing.T) {
	r, b := newTestRouter(t, "")
	before := len(b.Snapshot().Available)

	w := postForm(r, "/ui/listings", url.Values{
		"name":        {"Pasta Salad"},
		"quantity":    {"1 tray"},
		"pickup_time": {"Today at 5 PM"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `role="alert"`) {
		t.Errorf("expected a notice on the page")
	}
	if len(b.Snapshot().Available) != before {
		t.Fatalf("store changed on validation failure")
	}
}

func TestPageActionsRedirect(t *testing.T) {
	r, b := newTestRouter(t, "# Idea")

	if w := postForm(r, "/ui/selection/1", url.Values{"selected": {"true"}}); w.Code != http.StatusSeeOther {
		t.Fatalf("select: expected 303, got %d", w.Code)
	}
	if w := postForm(r, "/ui/meal-idea", nil); w.Code != http.StatusSeeOther {
		t.Fatalf("meal idea: expected 303, got %d", w.Code)
	}
	b.Wait()

	w := doJSON(r, http.MethodGet, "/", nil)
	if !strings.Contains(w.Body.String(), `aria-level="1"`) {
		t.Errorf("expected rendered heading block in modal")
	}

	if w := postForm(r, "/ui/meal-idea/close", nil); w.Code != http.StatusSeeOther {
		t.Fatalf("close: expected 303, got %d", w.Code)
	}
	if w := postForm(r, "/ui/listings/1/claim", nil); w.Code != http.StatusSeeOther {
		t.Fatalf("claim: expected 303, got %d", w.Code)
	}
	if len(b.Selected()) != 0 {
		t.Errorf("claim should clear the selection")
	}
}

func postMultipart(r http.Handler, path string, fields map[string]string, img []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if img != nil {
		fw, _ := mw.CreateFormFile("image", "upload.png")
		_, _ = fw.Write(img)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// hugePNG is a valid PNG header declaring a w x h canvas with no pixel data.
func hugePNG(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(kind string, data []byte) {
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		crc := crc32.NewIEEE()
		crc.Write([]byte(kind))
		crc.Write(data)
		buf.WriteString(kind)
		buf.Write(data)
		_ = binary.Write(&buf, binary.BigEndian, crc.Sum32())
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8], ihdr[9] = 8, 6
	chunk("IHDR", ihdr)
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestCreateListingRejectsHugeImage(t *testing.T) {
	r, b := newTestRouter(t, "")
	before := len(b.Snapshot().Available)

	w := postMultipart(r, "/api/listings", map[string]string{
		"name":        "Bagels",
		"description": "Day-old bagels",
		"quantity":    "12",
		"pickup_time": "Tomorrow 9 AM",
	}, hugePNG(40000, 40000))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "dimensions") {
		t.Errorf("expected a dimensions error, got %s", w.Body.String())
	}
	if len(b.Snapshot().Available) != before {
		t.Fatalf("store changed on rejected image")
	}
}

func TestPageImageErrorKeepsTypedFields(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := postMultipart(r, "/ui/listings", map[string]string{
		"name":        "Bagels",
		"description": "Day-old bagels",
		"quantity":    "12",
		"pickup_time": "Tomorrow 9 AM",
	}, []byte("not an image"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`value="Bagels"`, `value="12"`, "Day-old bagels"} {
		if !strings.Contains(body, want) {
			t.Errorf("re-rendered form missing %q", want)
		}
	}
}

func TestPageActionStatuses(t *testing.T) {
	r, _ := newTestRouter(t, "")

	cases := []struct {
		path   string
		values url.Values
		want   int
	}{
		{"/ui/selection/missing", url.Values{"selected": {"true"}}, http.StatusNotFound},
		{"/ui/selection/3", url.Values{"selected": {"true"}}, http.StatusConflict},
		{"/ui/listings/missing/claim", nil, http.StatusNotFound},
		{"/ui/meal-idea", nil, http.StatusBadRequest},
		{"/ui/view", url.Values{"view": {"settings"}}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if w := postForm(r, tc.path, tc.values); w.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.path, tc.want, w.Code)
		}
	}
}
