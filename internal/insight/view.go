package insight

import (
	"github.com/adsight/adsight/internal/models"
)

// ComputeView runs the whole pipeline once over an immutable dataset snapshot:
// filter, derive, flag, aggregate, recommend. The caller owns both the dataset
// and the filter state; nothing is retained between calls, so concurrent
// requests each operate on their own copy end to end.
func ComputeView(ds models.Dataset, req models.FilterRequest, p Policy) models.ViewModel {
	threshold := p.ZeroSalesThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	ids := IDSet(req.EntityIDs)

	scoped := models.Dataset{}
	counts := map[models.EntityType]int{}
	for _, t := range models.EntityTypes {
		rows := FilterByRange(ds[t], req.Start, req.End)
		rows = FilterByEntity(rows, ids)
		rows = FlagZeroSales(Derive(rows), threshold)
		scoped[t] = rows
		counts[t] = len(rows)
	}

	policy := p
	policy.ZeroSalesThreshold = threshold

	return models.ViewModel{
		Summary:   SummaryOf(scoped[models.EntityCampaign], threshold),
		Shares:    ComputeShares(scoped[models.EntityCampaign]),
		Issues:    BuildIssues(scoped, policy),
		Actions:   BuildActions(scoped, policy),
		RowCounts: counts,
	}
}
