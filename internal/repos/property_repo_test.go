package repos_test

import (
	"testing"
	"time"

	"wealthestate/internal/domain"
	"wealthestate/internal/repos"
)

func seededRepo(t *testing.T) *repos.PropertyRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return repos.NewPropertyRepo(db)
}

func testProperty(id, ptype string) domain.Property {
	return domain.Property{
		ID:             id,
		Title:          "Test Listing " + id,
		Description:    "desc",
		Price:          1000,
		Location:       "Lusaka",
		Type:           ptype,
		ImagesJSON:     domain.EncodeImages([]string{"https://example.test/" + id + ".jpg"}),
		SellerID:       "s-test",
		SellerName:     "Tester",
		SellerPhone:    "+260000000000",
		SellerEmail:    "t@e.com",
		SellerWhatsApp: "260000000000",
		CreatedAt:      time.Now().UnixMilli(),
	}
}

func TestSeedListings(t *testing.T) {
	repo := seededRepo(t)

	all, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 seeded listings, got %d", len(all))
	}
	if all[0].ID != "1" || all[0].Type != domain.TypeHouseSale {
		t.Fatalf("expected the mansion first, got %+v", all[0])
	}

	land, err := repo.ListByType(domain.TypeLandSale)
	if err != nil {
		t.Fatal(err)
	}
	if len(land) != 1 || land[0].ID != "2" {
		t.Fatalf("want exactly the seeded land listing, got %+v", land)
	}
}

func TestInsertNewestFirst(t *testing.T) {
	repo := seededRepo(t)

	before, _ := repo.List()
	p := testProperty("p-new", domain.TypeHouseRent)
	if err := repo.Insert(p); err != nil {
		t.Fatal(err)
	}

	after, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("length: want %d, got %d", len(before)+1, len(after))
	}
	if after[0].ID != "p-new" {
		t.Fatalf("new listing should be first, got %s", after[0].ID)
	}
	// prior relative order unchanged
	for i, prev := range before {
		if after[i+1].ID != prev.ID {
			t.Fatalf("order disturbed at %d: want %s, got %s", i, prev.ID, after[i+1].ID)
		}
	}
}

func TestFilterByTypeOnlyMatches(t *testing.T) {
	repo := seededRepo(t)
	_ = repo.Insert(testProperty("h1", domain.TypeHouseSale))
	_ = repo.Insert(testProperty("w1", domain.TypeWarehouseSale))
	_ = repo.Insert(testProperty("h2", domain.TypeHouseSale))

	houses, err := repo.ListByType(domain.TypeHouseSale)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range houses {
		if p.Type != domain.TypeHouseSale {
			t.Fatalf("filter leaked type %s", p.Type)
		}
	}
	// newest first within the filtered view
	if len(houses) != 3 || houses[0].ID != "h2" || houses[1].ID != "h1" || houses[2].ID != "1" {
		t.Fatalf("unexpected filtered order: %+v", houses)
	}
}

func TestDeletePresentAndAbsent(t *testing.T) {
	repo := seededRepo(t)

	if err := repo.Delete("1"); err != nil {
		t.Fatal(err)
	}
	all, _ := repo.List()
	if len(all) != 1 {
		t.Fatalf("want 1 after delete, got %d", len(all))
	}
	for _, p := range all {
		if p.ID == "1" {
			t.Fatal("deleted id still present")
		}
	}

	// absent id is a no-op, not an error
	if err := repo.Delete("no-such-id"); err != nil {
		t.Fatalf("absent delete should be a no-op: %v", err)
	}
	again, _ := repo.List()
	if len(again) != 1 {
		t.Fatalf("absent delete changed the collection: %d", len(again))
	}
}
