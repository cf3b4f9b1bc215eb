// Copyright (C) 2026 The Podhost Authors.
//
// This file is part of Podhost.
//
// Podhost is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Podhost is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Podhost.  If not, see <https://www.gnu.org/licenses/>.

package rss

import (
	"encoding/xml"
	"io"
)

const (
	Version          = "2.0"
	NamespaceItunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	NamespaceContent = "http://purl.org/rss/1.0/modules/content/"

	ExplicitYes = "yes"
	ExplicitNo  = "no"
)

// Element names carry their prefix directly; the prefixes are declared on
// the root element.

type Owner struct {
	Name  string `xml:"itunes:name"`
	Email string `xml:"itunes:email"`
}

type Category struct {
	Text string `xml:"text,attr"`
}

type Image struct {
	Href string `xml:"href,attr"`
}

type Enclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length string `xml:"length,attr"`
}

type GUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type Item struct {
	XMLName     xml.Name  `xml:"item"`
	Title       string    `xml:"title"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Duration    int64     `xml:"itunes:duration"`
	Season      int       `xml:"itunes:season"`
	Episode     int       `xml:"itunes:episode"`
	Keywords    string    `xml:"itunes:keywords,omitempty"`
	Enclosure   Enclosure `xml:"enclosure"`
	GUID        GUID      `xml:"guid"`
}

type Channel struct {
	XMLName     xml.Name `xml:"channel"`
	Title       string   `xml:"title"`
	Description string   `xml:"description"`
	Language    string   `xml:"language"`
	Link        string   `xml:"link"`
	Author      string   `xml:"itunes:author"`
	Explicit    string   `xml:"itunes:explicit"`
	Owner       Owner    `xml:"itunes:owner"`
	Category    Category `xml:"itunes:category"`
	Image       *Image   `xml:"itunes:image,omitempty"`
	Items       []Item   `xml:"item"`
}

type Rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Itunes  string   `xml:"xmlns:itunes,attr"`
	Content string   `xml:"xmlns:content,attr"`
	Channel Channel  `xml:"channel"`
}

func NewRss(channel Channel) *Rss {
	return &Rss{
		Version: Version,
		Itunes:  NamespaceItunes,
		Content: NamespaceContent,
		Channel: channel,
	}
}

func Explicit(explicit bool) string {
	if explicit {
		return ExplicitYes
	}
	return ExplicitNo
}

// Encode writes the complete document with an XML declaration, indenting
// two spaces per level.
func Encode(w io.Writer, doc *Rss) error {
	_, err := io.WriteString(w, xml.Header)
	if err != nil {
		return err
	}
	e := xml.NewEncoder(w)
	e.Indent("", "  ")
	err = e.Encode(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
