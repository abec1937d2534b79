package templates

import (
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

func TestLayout(t *testing.T) {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})

	out := render(t, Layout(vm.PageViewModel{Title: "Directory", ActivePath: "/directory"}, nil, body))

	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>Directory | NuCamp</title>")
	assert.Contains(t, out, `<a class="nav-link active" aria-current="page" href="/directory">Directory</a>`)
	assert.Contains(t, out, `<a class="nav-link" href="/about">About</a>`)
	assert.Contains(t, out, "<main><p>body</p></main>")
}

func TestDirectory(t *testing.T) {
	out := render(t, Directory(vm.DirectoryViewModel{
		Campsites: []vm.CampsiteViewModel{*testCampsite()},
	}, nil))

	assert.Contains(t, out, `href="/directory/0"`)
	assert.Contains(t, out, `<span class="card-title">React Lake Campground</span>`)
}

func TestHome_SkipsWhileLoading(t *testing.T) {
	out := render(t, Home(vm.HomeViewModel{IsLoading: true, Cards: []vm.CardViewModel{{Name: "x"}}}, nil))
	assert.Contains(t, out, "data-loading")
	assert.NotContains(t, out, "card-title")
}

func TestAbout_ErrorReplacesPartners(t *testing.T) {
	out := render(t, About(vm.AboutViewModel{
		ErrMess:  "Unable to load partners.",
		Partners: []vm.PartnerViewModel{{Name: "Bootstrap Outfitters"}},
	}, nil))

	assert.Contains(t, out, "Community Partners")
	assert.Contains(t, out, "Unable to load partners.")
	assert.NotContains(t, out, "Bootstrap Outfitters")
}
