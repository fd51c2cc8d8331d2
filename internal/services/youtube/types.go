package youtube

// Fragment is one timed unit of transcript text as returned by YouTube,
// in provider-supplied order
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// VideoMetadata holds the subset of oEmbed data this service cares about
type VideoMetadata struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// playerResponse mirrors the parts of ytInitialPlayerResponse needed to
// locate caption tracks
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []CaptionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// CaptionTrack is a single caption track entry from the player response
type CaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// timedText mirrors the timedtext XML document served at a track's baseUrl
type timedText struct {
	Texts []timedTextNode `xml:"text"`
}

type timedTextNode struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Content  string  `xml:",chardata"`
}

// oembedResponse mirrors the fields used from the oEmbed endpoint
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}
