package vixsrc

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/media"
)

// Theme is the embed player appearance appended to every link.
type Theme struct {
	PrimaryColor   string
	SecondaryColor string
	Lang           string
	Autoplay       bool
}

// Player synthesizes embed player links without touching the network.
type Player struct {
	baseURL string
	suffix  string
}

// NewPlayer builds a Player rooted at baseURL.
func NewPlayer(baseURL string, theme Theme) *Player {
	return &Player{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		suffix: fmt.Sprintf("?primaryColor=%s&secondaryColor=%s&lang=%s&autoplay=%t",
			theme.PrimaryColor, theme.SecondaryColor, theme.Lang, theme.Autoplay),
	}
}

// PlayerFromConfig reads the vixsrc.* keys.
func PlayerFromConfig() *Player {
	return NewPlayer(viper.GetString(key.VixsrcURL), Theme{
		PrimaryColor:   viper.GetString(key.VixsrcPrimaryColor),
		SecondaryColor: viper.GetString(key.VixsrcSecondaryColor),
		Lang:           viper.GetString(key.VixsrcLang),
		Autoplay:       viper.GetBool(key.VixsrcAutoplay),
	})
}

// Link returns the single stream for compositeID, or none when the id does not fit the category.
func (p *Player) Link(compositeID string, category media.Category) mo.Option[*media.Stream] {
	id := media.ParseID(compositeID, category)

	var path string
	switch id.Kind {
	case media.KindMovie:
		path = fmt.Sprintf("/movie/%s", id.External)
	case media.KindEpisode:
		path = fmt.Sprintf("/tv/%s/%d/%d", id.External, id.Season, id.Episode)
	default:
		return mo.None[*media.Stream]()
	}

	return mo.Some(&media.Stream{
		URL:   p.baseURL + path + p.suffix,
		Title: constant.StreamTitle,
		Name:  constant.StreamName,
	})
}
