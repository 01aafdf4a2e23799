package response

type SearchResponse struct {
	Results []BusinessResponse `json:"results"`
	Count   int                `json:"count"`
}
