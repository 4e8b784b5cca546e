// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cancel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/jaktls/services/langserver/baseproto"
	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

// TestRegisterAndCancel verifies the basic register/cancel/release cycle.
func TestRegisterAndCancel(t *testing.T) {
	t.Run("cancel fires the derived context", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		ctx, done, err := r.Register(context.Background(), baseproto.IntID(1))
		require.NoError(t, err)
		defer done()

		require.Equal(t, 1, r.Pending())
		assert.True(t, r.Cancel(baseproto.IntID(1)))

		select {
		case <-ctx.Done():
		default:
			t.Fatal("context not cancelled")
		}
		assert.Equal(t, 0, r.Pending())
	})

	t.Run("done releases without cancelling peers", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		ctxA, doneA, err := r.Register(context.Background(), baseproto.IntID(1))
		require.NoError(t, err)
		_, doneB, err := r.Register(context.Background(), baseproto.IntID(2))
		require.NoError(t, err)
		defer doneB()

		doneA()
		assert.Equal(t, 1, r.Pending())

		select {
		case <-ctxA.Done():
		default:
			t.Fatal("done should cancel the released context")
		}
	})

	t.Run("cancel after release is a miss", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		_, done, err := r.Register(context.Background(), baseproto.IntID(3))
		require.NoError(t, err)
		done()

		assert.False(t, r.Cancel(baseproto.IntID(3)))
	})

	t.Run("done is idempotent", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		_, done, err := r.Register(context.Background(), baseproto.IntID(4))
		require.NoError(t, err)
		done()
		done()
		assert.Equal(t, 0, r.Pending())
	})
}

// TestRegisterRejections verifies duplicate and post-close registrations
// fail with the matching sentinel.
func TestRegisterRejections(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		_, done, err := r.Register(context.Background(), baseproto.StringID(jsonval.NewStr("x")))
		require.NoError(t, err)
		defer done()

		_, _, err = r.Register(context.Background(), baseproto.StringID(jsonval.NewStr("x")))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("string and integer ids do not collide", func(t *testing.T) {
		r := NewRegistry(nil)
		defer r.Close()

		_, doneI, err := r.Register(context.Background(), baseproto.IntID(1))
		require.NoError(t, err)
		defer doneI()

		_, doneS, err := r.Register(context.Background(), baseproto.StringID(jsonval.NewStr("1")))
		require.NoError(t, err)
		defer doneS()

		assert.Equal(t, 2, r.Pending())
	})

	t.Run("closed registry", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Close()

		_, _, err := r.Register(context.Background(), baseproto.IntID(1))
		assert.ErrorIs(t, err, ErrRegistryClosed)
	})
}

// TestApply verifies a decoded cancel payload reaches the matching request.
func TestApply(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	ctx, done, err := r.Register(context.Background(), baseproto.IntID(12))
	require.NoError(t, err)
	defer done()

	assert.True(t, r.Apply(baseproto.CancelParams{ID: baseproto.IntID(12)}))
	select {
	case <-ctx.Done():
	default:
		t.Fatal("context not cancelled")
	}

	assert.False(t, r.Apply(baseproto.CancelParams{ID: baseproto.IntID(99)}))
}

// TestClose verifies close cancels everything still pending.
func TestClose(t *testing.T) {
	r := NewRegistry(nil)

	ctxA, _, err := r.Register(context.Background(), baseproto.IntID(1))
	require.NoError(t, err)
	ctxB, _, err := r.Register(context.Background(), baseproto.IntID(2))
	require.NoError(t, err)

	r.Close()
	r.Close() // idempotent

	for _, ctx := range []context.Context{ctxA, ctxB} {
		select {
		case <-ctx.Done():
		default:
			t.Fatal("context not cancelled on close")
		}
	}
	assert.Equal(t, 0, r.Pending())
}
