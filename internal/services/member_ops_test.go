package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"famfin/internal/models"
	"famfin/internal/testutil"
)

func TestAddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		member, err := f.service.AddMember(ctx, MemberDraft{
			Name:          "Ana Silva",
			Role:          "parent",
			MonthlyIncome: decimal.NewFromInt(6000),
		})
		testutil.AssertNoError(t, err)

		if member.AvatarURL != "https://ui-avatars.com/api/?name=Ana+Silva" {
			t.Errorf("expected synthesized avatar, got %q", member.AvatarURL)
		}
		if !member.IsActive {
			t.Error("new members start active")
		}
		if _, ok := f.store.Member(member.ID); !ok {
			t.Error("expected member in the store")
		}
	})

	t.Run("explicit_avatar_kept", func(t *testing.T) {
		f := newFixture(t)

		member, err := f.service.AddMember(ctx, MemberDraft{
			Name:      "Bruno",
			AvatarURL: "https://example.com/b.png",
		})
		testutil.AssertNoError(t, err)
		if member.AvatarURL != "https://example.com/b.png" {
			t.Errorf("expected provided avatar preserved, got %q", member.AvatarURL)
		}
	})

	t.Run("validation_failures", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddMember(ctx, MemberDraft{})
		testutil.AssertFieldError(t, err, "name")

		_, err = f.service.AddMember(ctx, MemberDraft{
			Name:          "Carla",
			MonthlyIncome: decimal.NewFromInt(-1),
		})
		testutil.AssertFieldError(t, err, "monthly_income")
	})

	t.Run("loader_failure_rolls_back", func(t *testing.T) {
		f := newFixture(t)
		f.loader.FailWith(errors.New("offline"))

		_, err := f.service.AddMember(ctx, MemberDraft{Name: "Dani"})
		testutil.AssertAppError(t, err, "LOADER_FAILURE")
		if len(f.store.Members()) != 1 {
			t.Error("expected optimistic insert rolled back")
		}
	})
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	income := decimal.NewFromInt(7500)
	updated, err := f.service.UpdateMember(ctx, f.member.ID, models.MemberPatch{MonthlyIncome: &income})
	testutil.AssertNoError(t, err)
	if !updated.MonthlyIncome.Equal(income) {
		t.Errorf("expected income 7500, got %s", updated.MonthlyIncome)
	}

	empty := ""
	_, err = f.service.UpdateMember(ctx, f.member.ID, models.MemberPatch{Name: &empty})
	testutil.AssertFieldError(t, err, "name")

	_, err = f.service.UpdateMember(ctx, "missing", models.MemberPatch{})
	testutil.AssertAppError(t, err, "MEMBER_NOT_FOUND")
}

func TestDeleteMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	testutil.AssertNoError(t, f.service.DeleteMember(ctx, f.member.ID))
	if _, ok := f.store.Member(f.member.ID); ok {
		t.Error("expected member removed")
	}

	// Accounts held by the member keep their reference.
	if len(f.service.Accounts()) != 2 {
		t.Error("expected accounts untouched by member removal")
	}

	err := f.service.DeleteMember(ctx, f.member.ID)
	testutil.AssertAppError(t, err, "MEMBER_NOT_FOUND")
}
