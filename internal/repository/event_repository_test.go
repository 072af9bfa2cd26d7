package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/internal/domain"
	"eventhive/internal/repository"
)

func seedEvents(t *testing.T, repo domain.EventRepository) (early, late, undated *domain.Event) {
	t.Helper()

	early = &domain.Event{Title: "Tech Summit", Location: "ICCB, Dhaka", Timestamp: 1000, Date: "15 Jan - 9 AM"}
	late = &domain.Event{Title: "WaveFest", Location: "Bashundhara", Timestamp: 2000, Date: "12 Dec - 10 PM"}
	undated = &domain.Event{Title: "Mystery Night", Location: "TBA"}

	// kasıtlı olarak sırasız eklenir
	require.NoError(t, repo.Create(late))
	require.NoError(t, repo.Create(undated))
	require.NoError(t, repo.Create(early))
	return early, late, undated
}

func TestEventDefaultsOnCreate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())

	event := &domain.Event{Title: "Sade Etkinlik"}
	require.NoError(t, repo.Create(event))

	found, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	require.Equal(t, domain.EventStatusActive, found.Status)
	require.Equal(t, "Other", found.EventType)

	missing, err := repo.FindByID(9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

// Tüm listelemeler zaman damgasına göre artan sıradadır; tarihsiz
// satırlar (timestamp = 0) listenin sonuna düşer.
func TestEventOrderingPutsUndatedLast(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())
	early, late, undated := seedEvents(t, repo)

	events, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, early.ID, events[0].ID)
	require.Equal(t, late.ID, events[1].ID)
	require.Equal(t, undated.ID, events[2].ID)
}

func TestEventSearchFilterSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())
	early, late, _ := seedEvents(t, repo)

	// hiç filtre yok: hepsi döner
	all, err := repo.Search(domain.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// başlık eşleşmesi büyük/küçük harfe duyarsız alt dizedir
	byTitle, err := repo.Search(domain.EventFilter{Title: ptr("tech")})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	require.Equal(t, early.ID, byTitle[0].ID)

	byLocation, err := repo.Search(domain.EventFilter{Location: ptr("bashundhara")})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	require.Equal(t, late.ID, byLocation[0].ID)

	// alt sınır kapsayıcıdır
	bounded, err := repo.Search(domain.EventFilter{MinTimestamp: ptr(int64(2000))})
	require.NoError(t, err)
	require.Len(t, bounded, 1)
	require.Equal(t, late.ID, bounded[0].ID)

	// birleşik filtreler AND ile bağlanır
	combined, err := repo.Search(domain.EventFilter{Title: ptr("fest"), MaxTimestamp: ptr(int64(1500))})
	require.NoError(t, err)
	require.Empty(t, combined)
}

func TestEventGalleryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())

	event := &domain.Event{
		Title:             "Galerili",
		CoverImagePath:    "images/kapak.jpg",
		GalleryImagePaths: []string{"images/bir.jpg", "images/iki.jpg"},
	}
	require.NoError(t, repo.Create(event))

	found, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	require.Equal(t, "images/kapak.jpg", found.CoverImagePath)
	require.Equal(t, []string{"images/bir.jpg", "images/iki.jpg"}, found.GalleryImagePaths)

	bare := &domain.Event{Title: "Galerisiz"}
	require.NoError(t, repo.Create(bare))

	found, err = repo.FindByID(bare.ID)
	require.NoError(t, err)
	require.Nil(t, found.GalleryImagePaths)
}

func TestEventStatusQueries(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())

	active := &domain.Event{Title: "Aktif"}
	held := &domain.Event{Title: "Beklemede", Status: domain.EventStatusHold}
	require.NoError(t, repo.Create(active))
	require.NoError(t, repo.Create(held))

	events, err := repo.FindByStatus(domain.EventStatusHold)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, held.ID, events[0].ID)

	count, err := repo.CountByStatus(domain.EventStatusActive)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestEventTimestampBackfillQueries(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEventRepository(db, testLogger())

	dated := &domain.Event{Title: "Tarihli", Date: "15 Jan - 9 AM"}
	dateless := &domain.Event{Title: "Tarihsiz"}
	stamped := &domain.Event{Title: "Damgalı", Date: "12 Dec - 10 PM", Timestamp: 5000}
	require.NoError(t, repo.Create(dated))
	require.NoError(t, repo.Create(dateless))
	require.NoError(t, repo.Create(stamped))

	// yalnızca metin tarihi olan ama damgası olmayan satırlar adaydır
	candidates, err := repo.FindWithZeroTimestamp()
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, dated.ID, candidates[0].ID)

	require.NoError(t, repo.UpdateTimestamp(dated.ID, 7000))

	found, err := repo.FindByID(dated.ID)
	require.NoError(t, err)
	require.Equal(t, int64(7000), found.Timestamp)

	candidates, err = repo.FindWithZeroTimestamp()
	require.NoError(t, err)
	require.Empty(t, candidates)
}
