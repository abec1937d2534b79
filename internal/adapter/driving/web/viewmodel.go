package web

import (
	"fmt"
	"strconv"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/config"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// detailPath is the GUI path of a campsite's detail page.
func detailPath(id int64) string {
	return "/directory/" + strconv.FormatInt(id, 10)
}

func toCampsiteViewModel(c model.Campsite, baseURL string) vm.CampsiteViewModel {
	return vm.CampsiteViewModel{
		ID:              c.ID,
		Name:            c.Name,
		ImageURL:        config.JoinURL(baseURL, c.Image),
		Elevation:       c.Elevation,
		DescriptionHTML: RenderMarkdown(c.Description),
		DetailPath:      detailPath(c.ID),
	}
}

func toCampsiteViewModels(campsites []model.Campsite, baseURL string) []vm.CampsiteViewModel {
	out := make([]vm.CampsiteViewModel, 0, len(campsites))
	for _, c := range campsites {
		out = append(out, toCampsiteViewModel(c, baseURL))
	}
	return out
}

// toCommentViewModels keeps nil as nil: absent comments render nothing.
func toCommentViewModels(comments []model.Comment) []vm.CommentViewModel {
	if comments == nil {
		return nil
	}
	out := make([]vm.CommentViewModel, 0, len(comments))
	for _, c := range comments {
		out = append(out, vm.CommentViewModel{
			ID:     c.ID,
			Key:    fmt.Sprintf("comment-%d", c.ID),
			Rating: int(c.Rating),
			Text:   c.Text,
			Author: c.Author,
			Date:   FormatCommentDate(c.Date),
		})
	}
	return out
}

// newCommentFormViewModel returns the form for a campsite in its initial
// state: closed, rating preselected to the lowest value, empty fields.
func newCommentFormViewModel(campsiteID int64, csrfToken string) vm.CommentFormViewModel {
	ratings := model.Ratings()
	values := make([]int, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, int(r))
	}

	path := detailPath(campsiteID)
	return vm.CommentFormViewModel{
		ActionURL: path + "/comments",
		OpenURL:   path + "?comment=open",
		CloseURL:  path,
		CSRFToken: csrfToken,
		Ratings:   values,
		Rating:    int(model.MinRating),
	}
}

func toCampsiteInfoViewModel(props application.DetailProps, form vm.CommentFormViewModel, baseURL string, animations bool) vm.CampsiteInfoViewModel {
	out := vm.CampsiteInfoViewModel{
		IsLoading:  props.IsLoading,
		ErrMess:    props.ErrMess,
		Comments:   toCommentViewModels(props.Comments),
		Form:       form,
		Animations: animations,
	}
	if props.Campsite != nil {
		c := toCampsiteViewModel(*props.Campsite, baseURL)
		out.Campsite = &c
	}
	return out
}

func toHomeViewModel(h *application.Highlights, baseURL string) vm.HomeViewModel {
	var cards []vm.CardViewModel
	if h.Campsite != nil {
		cards = append(cards, vm.CardViewModel{
			Title:           "Featured Campsite",
			Name:            h.Campsite.Name,
			ImageURL:        config.JoinURL(baseURL, h.Campsite.Image),
			DescriptionHTML: RenderMarkdown(h.Campsite.Description),
			Link:            detailPath(h.Campsite.ID),
		})
	}
	if h.Promotion != nil {
		cards = append(cards, vm.CardViewModel{
			Title:           "Featured Promotion",
			Name:            h.Promotion.Name,
			ImageURL:        config.JoinURL(baseURL, h.Promotion.Image),
			DescriptionHTML: RenderMarkdown(h.Promotion.Description),
		})
	}
	if h.Partner != nil {
		cards = append(cards, vm.CardViewModel{
			Title:           "Featured Partner",
			Name:            h.Partner.Name,
			ImageURL:        config.JoinURL(baseURL, h.Partner.Image),
			DescriptionHTML: RenderMarkdown(h.Partner.Description),
			Link:            "/about",
		})
	}
	return vm.HomeViewModel{Cards: cards}
}

func toPartnerViewModels(partners []model.Partner, baseURL string) []vm.PartnerViewModel {
	out := make([]vm.PartnerViewModel, 0, len(partners))
	for _, p := range partners {
		out = append(out, vm.PartnerViewModel{
			ID:              p.ID,
			Name:            p.Name,
			ImageURL:        config.JoinURL(baseURL, p.Image),
			DescriptionHTML: RenderMarkdown(p.Description),
		})
	}
	return out
}
