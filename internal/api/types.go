package api

import "time"

// Statistics is the dashboard summary
type Statistics struct {
	DbSize        int64              `json:"dbsize"`
	Results       int64              `json:"results"`
	Headers       int64              `json:"headers"`
	NetworkLogs   int64              `json:"networklogs"`
	ConsoleLogs   int64              `json:"consolelogs"`
	ResponseCodes []ResponseCodeStat `json:"response_code_stats"`
}

type ResponseCodeStat struct {
	Code  int   `json:"code"`
	Count int64 `json:"count"`
}

// GalleryQuery holds the filters the gallery endpoint understands
type GalleryQuery struct {
	Page         int
	Limit        int
	Technologies []string
	Status       []int
	Perception   bool
	Failed       bool
}

// Params converts the query into call parameters, dropping empty filters
func (q GalleryQuery) Params() Params {
	p := Params{
		"page":   q.Page,
		"limit":  q.Limit,
		"failed": q.Failed,
	}
	if len(q.Technologies) > 0 {
		p["technologies"] = q.Technologies
	}
	if len(q.Status) > 0 {
		p["status"] = q.Status
	}
	if q.Perception {
		p["perception"] = true
	}
	return p
}

type GalleryResponse struct {
	Results    []GalleryItem `json:"results"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalCount int64         `json:"total_count"`
}

type GalleryItem struct {
	ID           uint      `json:"id"`
	ProbedAt     time.Time `json:"probed_at"`
	URL          string    `json:"url"`
	ResponseCode int       `json:"response_code"`
	Title        string    `json:"title"`
	Filename     string    `json:"file_name"`
	Screenshot   string    `json:"screenshot"`
	Failed       bool      `json:"failed"`
	Technologies []string  `json:"technologies"`
}

// ListRow is one line of the results table
type ListRow struct {
	ID             uint   `json:"id"`
	URL            string `json:"url"`
	FinalURL       string `json:"final_url"`
	ResponseCode   int    `json:"response_code"`
	ResponseReason string `json:"response_reason"`
	Protocol       string `json:"protocol"`
	ContentLength  int64  `json:"content_length"`
	Title          string `json:"title"`
	Failed         bool   `json:"failed"`
	FailedReason   string `json:"failed_reason"`
}

// Detail is a full probe result
type Detail struct {
	ID             uint         `json:"id"`
	URL            string       `json:"url"`
	ProbedAt       time.Time    `json:"probed_at"`
	FinalURL       string       `json:"final_url"`
	ResponseCode   int          `json:"response_code"`
	ResponseReason string       `json:"response_reason"`
	Protocol       string       `json:"protocol"`
	ContentLength  int64        `json:"content_length"`
	HTML           string       `json:"html"`
	Title          string       `json:"title"`
	PerceptionHash string       `json:"perception_hash"`
	Filename       string       `json:"file_name"`
	IsPDF          bool         `json:"is_pdf"`
	Failed         bool         `json:"failed"`
	FailedReason   string       `json:"failed_reason"`
	Screenshot     string       `json:"screenshot"`
	TLS            *TLS         `json:"tls,omitempty"`
	Technologies   []Technology `json:"technologies"`
	Headers        []Header     `json:"headers"`
	Network        []NetworkLog `json:"network"`
	Console        []ConsoleLog `json:"console"`
	Cookies        []Cookie     `json:"cookies"`
}

type TLS struct {
	Protocol    string    `json:"protocol"`
	Cipher      string    `json:"cipher"`
	SubjectName string    `json:"subject_name"`
	Issuer      string    `json:"issuer"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidTo     time.Time `json:"valid_to"`
	SanList     []SAN     `json:"san_list"`
}

type SAN struct {
	Value string `json:"value"`
}

type Technology struct {
	Value string `json:"value"`
}

type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type NetworkLog struct {
	RequestType int       `json:"request_type"`
	StatusCode  int       `json:"status_code"`
	URL         string    `json:"url"`
	RemoteIP    string    `json:"remote_ip"`
	MIMEType    string    `json:"mime_type"`
	Time        time.Time `json:"time"`
	Error       string    `json:"error"`
}

type ConsoleLog struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	HTTPOnly bool   `json:"http_only"`
	Secure   bool   `json:"secure"`
}

type TechnologyList struct {
	Technologies []string `json:"technologies"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

// SearchHit is a list row plus the fields that matched the query
type SearchHit struct {
	ID             uint     `json:"id"`
	URL            string   `json:"url"`
	FinalURL       string   `json:"final_url"`
	ResponseCode   int      `json:"response_code"`
	ResponseReason string   `json:"response_reason"`
	Protocol       string   `json:"protocol"`
	ContentLength  int64    `json:"content_length"`
	Title          string   `json:"title"`
	Failed         bool     `json:"failed"`
	FailedReason   string   `json:"failed_reason"`
	Filename       string   `json:"file_name"`
	MatchedFields  []string `json:"matched_fields"`
}

type DeleteRequest struct {
	ID int `json:"id"`
}

// SubmitOptions tune a probe run. Zero values leave the backend defaults.
type SubmitOptions struct {
	X         int    `json:"window_x"`
	Y         int    `json:"window_y"`
	UserAgent string `json:"user_agent"`
	Timeout   int    `json:"timeout"`
	Delay     int    `json:"delay"`
	Format    string `json:"format"`
}

type SubmitRequest struct {
	URLs    []string       `json:"urls"`
	Options *SubmitOptions `json:"options"`
}

type SubmitSingleRequest struct {
	URL     string         `json:"url"`
	Options *SubmitOptions `json:"options"`
}
