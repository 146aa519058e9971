package entities

import (
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
)

func TestNewBookValidation(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name     string
		title    string
		genre    string
		capacity int
		wantErr  error
	}{
		{"valid", "Ocean of Ink", "fantasy", 10, nil},
		{"empty genre allowed", "Ocean of Ink", "", 10, nil},
		{"title at limit", strings.Repeat("t", 50), "fantasy", 10, nil},
		{"genre at limit", "Ocean of Ink", strings.Repeat("g", 20), 10, nil},
		{"capacity one", "Ocean of Ink", "fantasy", 1, nil},
		{"empty title", "", "fantasy", 10, domainerrors.ErrInvalidBook},
		{"blank title", "   ", "fantasy", 10, domainerrors.ErrInvalidBook},
		{"title too long", strings.Repeat("t", 51), "fantasy", 10, domainerrors.ErrInvalidBook},
		{"genre too long", "Ocean of Ink", strings.Repeat("g", 21), 10, domainerrors.ErrInvalidBook},
		{"zero capacity", "Ocean of Ink", "fantasy", 0, domainerrors.ErrInvalidBook},
		{"negative capacity", "Ocean of Ink", "fantasy", -3, domainerrors.ErrInvalidBook},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBook("book-1", "alice", "col-1", tc.title, tc.genre, tc.capacity, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewBook: err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewBookRequiresIdentity(t *testing.T) {
	now := time.Now()

	if _, err := NewBook("", "alice", "col-1", "Ocean of Ink", "fantasy", 10, now); !errors.Is(err, domainerrors.ErrInvalidBook) {
		t.Fatalf("empty book id: err = %v, want %v", err, domainerrors.ErrInvalidBook)
	}
	if _, err := NewBook("book-1", "", "col-1", "Ocean of Ink", "fantasy", 10, now); !errors.Is(err, domainerrors.ErrInvalidBook) {
		t.Fatalf("empty writer: err = %v, want %v", err, domainerrors.ErrInvalidBook)
	}
	if _, err := NewBook("book-1", "alice", "", "Ocean of Ink", "fantasy", 10, now); !errors.Is(err, domainerrors.ErrInvalidBook) {
		t.Fatalf("empty collection: err = %v, want %v", err, domainerrors.ErrInvalidBook)
	}
}

func TestNextChapterNumberIsDense(t *testing.T) {
	book, err := NewBook("book-1", "alice", "col-1", "Ocean of Ink", "fantasy", 3, time.Now())
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}

	for want := 1; want <= book.Capacity; want++ {
		got, err := book.NextChapterNumber()
		if err != nil {
			t.Fatalf("NextChapterNumber at count %d: %v", book.ChapterCount, err)
		}
		if got != want {
			t.Fatalf("NextChapterNumber = %d, want %d", got, want)
		}
		book.ChapterCount++
	}

	if _, err := book.NextChapterNumber(); !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("full book: err = %v, want %v", err, domainerrors.ErrCapacityExceeded)
	}
}
