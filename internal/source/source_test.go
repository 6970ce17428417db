package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/source"
)

type stubSource struct{ name string }

func (s stubSource) Name() string { return s.name }

func (s stubSource) Generate(context.Context, time.Time) (domain.DailyDigest, []domain.Alert, error) {
	return domain.DailyDigest{Date: "2025-01-15"}, nil, nil
}

func TestRegistryResolve(t *testing.T) {
	reg := source.NewRegistry()
	reg.Register(stubSource{name: "mock"})
	reg.Register(stubSource{name: "archive"})

	src, err := reg.Resolve("mock")
	gt.NoError(t, err).Required()
	gt.Equal(t, src.Name(), "mock")
	gt.Equal(t, reg.Names(), []string{"archive", "mock"})

	_, err = reg.Resolve("rss")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, domain.ErrUnknownSource))
}
