package catalog

import "sort"

type Count struct {
	Key   string
	Count int
}

type YearCount struct {
	Year  int
	Count int
}

// Stats summarises a catalog the way the dataset overview does.
type Stats struct {
	Planets int
	Systems int
	Methods []Count     // descending by count
	Years   []YearCount // ascending by year
}

func Summarize(rows []Row) Stats {
	hosts, _ := Group(rows)

	methods := make(map[string]int)
	years := make(map[int]int)
	for _, r := range rows {
		if r.DiscoveryMethod != "" {
			methods[r.DiscoveryMethod]++
		}
		if r.DiscoveryYear > 0 {
			years[r.DiscoveryYear]++
		}
	}

	st := Stats{Planets: len(rows), Systems: len(hosts)}
	for k, v := range methods {
		st.Methods = append(st.Methods, Count{Key: k, Count: v})
	}
	sort.Slice(st.Methods, func(i, j int) bool {
		if st.Methods[i].Count != st.Methods[j].Count {
			return st.Methods[i].Count > st.Methods[j].Count
		}
		return st.Methods[i].Key < st.Methods[j].Key
	})

	for y, v := range years {
		st.Years = append(st.Years, YearCount{Year: y, Count: v})
	}
	sort.Slice(st.Years, func(i, j int) bool { return st.Years[i].Year < st.Years[j].Year })
	return st
}
