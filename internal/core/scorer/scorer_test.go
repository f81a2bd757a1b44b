package scorer

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"listingseo/internal/core/taxonomy"
	"listingseo/internal/core/tipcopy"
)

const walletTitle = "Personalized Leather Wallet for Men | Anniversary Gift | Custom Engraved Wallet Birthday Present"

const walletDescription = `✨ The personalized anniversary gift he will carry every day: a handmade leather wallet in a gift set with a matching card, custom engraved with a name or date.

WHAT'S INCLUDED:
• 1 genuine leather bifold wallet with custom engraving
• A gift box with a handwritten note
• Care instructions for the leather

🎁 FEATURES:
• Full grain leather that ages beautifully with use
• Eight card slots and a cash compartment
• Engraving on the front or inside, your choice
• A minimalist design with a rustic style finish
• Perfect for a wedding gift, a christmas gift or a handmade gift for a birthday

📦 HOW IT WORKS:
1. Add the wallet to your cart
2. Enter the name or date you want engraved
3. We craft and ship it within 3 business days

💡 PLEASE NOTE:
Every hide is unique, so grain and color vary slightly from the photos. Engraving is permanent, so please double check spelling before you order. The engraved wallet makes a thoughtful birthday present for a husband, father, brother or best friend.

Questions? Send us a message any time and add our shop to your favorites to see new designs first.`

func fullTags() []string {
	return []string{
		"digital download", "instant download", "personalized mug", "gift for mom",
		"christmas gift", "minimalist design", "rustic style", "handmade gift",
		"printable art", "wedding gift", "boho decor", "modern print", "farmhouse sign",
	}
}

func december(t *testing.T, locale string) *Engine {
	t.Helper()
	return New(WithMonth(12), WithLocale(locale))
}

func TestScore_WalletListing(t *testing.T) {
	e := december(t, tipcopy.English)
	r := e.Score(walletTitle, walletDescription, fullTags())

	want := Breakdown{TitleScore: 54, DescriptionScore: 100, TagScore: 100, KeywordScore: 100}
	if r.Breakdown != want {
		t.Fatalf("breakdown = %+v, want %+v", r.Breakdown, want)
	}
	if r.OverallScore != 86 || r.Grade != "A-" {
		t.Fatalf("overall = %d %s, want 86 A-", r.OverallScore, r.Grade)
	}

	if len(r.Tips) != 2 {
		t.Fatalf("tips = %+v", r.Tips)
	}
	if r.Tips[0].Field != "title" || r.Tips[0].Priority != High || !strings.Contains(r.Tips[0].Tip, "96 characters") {
		t.Fatalf("first tip = %+v", r.Tips[0])
	}
	seasonal := r.Tips[1]
	if seasonal.Field != "seasonal" || seasonal.Priority != Low {
		t.Fatalf("second tip = %+v", seasonal)
	}
	if !strings.Contains(seasonal.Tip, "christmas, holiday, hanukkah.") {
		t.Fatalf("seasonal tip = %q", seasonal.Tip)
	}

	a := r.Analysis
	if a.TitleAnalysis.Length != 96 || a.TitleAnalysis.OptimalLength || !a.TitleAnalysis.UsesSeparators {
		t.Fatalf("title analysis = %+v", a.TitleAnalysis)
	}
	if a.TitleAnalysis.FrontLoaded {
		t.Fatalf("no product or format keyword in title, front_loaded should be false")
	}
	if got := strings.Join(a.KeywordCategoriesFound.Occasions, ","); got != "birthday,anniversary" {
		t.Fatalf("occasions = %s", got)
	}
	if a.TagAnalysis != (TagAnalysis{Count: 13, MultiWordCount: 13, AvgLength: 13.62, UniqueCount: 13}) {
		t.Fatalf("tag analysis = %+v", a.TagAnalysis)
	}
	if len(a.SeasonalRelevance) != 5 || a.SeasonalRelevance[0] != "christmas" {
		t.Fatalf("seasonal relevance = %v", a.SeasonalRelevance)
	}
}

func TestScore_EmptyFloor(t *testing.T) {
	r := december(t, tipcopy.English).Score("", "", nil)
	if r.OverallScore != 0 || r.Breakdown != (Breakdown{}) {
		t.Fatalf("empty listing scored %d %+v", r.OverallScore, r.Breakdown)
	}
	if r.Grade != "F" {
		t.Fatalf("grade = %s", r.Grade)
	}
	if len(r.Tips) == 0 || r.Tips[len(r.Tips)-1].Field != "seasonal" {
		t.Fatalf("seasonal tip missing: %+v", r.Tips)
	}
	if !strings.Contains(r.Tips[0].Tip, "0 tags") {
		t.Fatalf("tag count tip = %q", r.Tips[0].Tip)
	}
	if r.Analysis.TagAnalysis.AvgLength != 0 || r.Analysis.KeywordCategoriesFound.ProductTypes == nil {
		t.Fatalf("analysis = %+v", r.Analysis)
	}
}

func TestScore_Totality(t *testing.T) {
	long := strings.Repeat("Boho Wall Art Printable ", 400)
	cases := []struct {
		title, desc string
		tags        []string
	}{
		{"", "", nil},
		{"", "", []string{}},
		{long, long, []string{long, long}},
		{"🎁🎁🎁", "✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨✨", []string{"🎁", " ", ""}},
		{"ÅÄÖ ÉTÉ | ﬁ straße", "日本語の説明\n\n\n\n\n\n", []string{"  wall   art  ", "\tboho\n"}},
		{"THE BEST CHEAP SALE", "CLICK HERE:", []string{"the", "the", "the", "the", "the", "the", "the", "the", "the", "the", "the", "the", "the", "the", "the"}},
		{strings.Repeat("x", 141), "", fullTags()},
		{"\x00\xff\xfe", "\xc3\x28", []string{"\xe2\x82"}},
	}
	e := december(t, tipcopy.Swedish)
	for i, c := range cases {
		r := e.Score(c.title, c.desc, c.tags)
		for name, v := range map[string]int{
			"overall":     r.OverallScore,
			"title":       r.Breakdown.TitleScore,
			"description": r.Breakdown.DescriptionScore,
			"tags":        r.Breakdown.TagScore,
			"keywords":    r.Breakdown.KeywordScore,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("case %d: %s = %d out of range", i, name, v)
			}
		}
		if len(r.Tips) == 0 || len(r.Tips) > MaxTips {
			t.Fatalf("case %d: %d tips", i, len(r.Tips))
		}
		assertRanked(t, r.Tips)
		if r.OverallScore != Overall(r.Breakdown.TitleScore, r.Breakdown.TagScore, r.Breakdown.DescriptionScore, r.Breakdown.KeywordScore) {
			t.Fatalf("case %d: overall does not follow the weights", i)
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	e := december(t, tipcopy.English)
	a, _ := json.Marshal(e.Score(walletTitle, walletDescription, fullTags()))
	b, _ := json.Marshal(e.Score(walletTitle, walletDescription, fullTags()))
	if string(a) != string(b) {
		t.Fatalf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestScore_DoesNotMutateTags(t *testing.T) {
	tags := []string{" Wall Art ", "boho", "boho"}
	before := append([]string(nil), tags...)
	Score("Boho Wall Art", "desc", tags)
	if !reflect.DeepEqual(tags, before) {
		t.Fatalf("tags mutated: %q", tags)
	}
}

func TestScore_Concurrent(t *testing.T) {
	e := december(t, tipcopy.English)
	want := e.Score(walletTitle, walletDescription, fullTags())

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Score(walletTitle, walletDescription, fullTags()); !reflect.DeepEqual(got, want) {
				errs <- "concurrent result differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}

func TestReport_JSONShape(t *testing.T) {
	raw, err := json.Marshal(december(t, tipcopy.English).Score("", "", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"overall_score", "breakdown", "tips", "grade", "analysis"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing %q in %s", k, raw)
		}
	}
	bd := m["breakdown"].(map[string]any)
	for _, k := range []string{"title_score", "description_score", "tag_score", "keyword_score"} {
		if _, ok := bd[k]; !ok {
			t.Fatalf("breakdown missing %q", k)
		}
	}
	an := m["analysis"].(map[string]any)
	found := an["keyword_categories_found"].(map[string]any)
	for _, k := range []string{"product_types", "formats", "styles", "occasions"} {
		if _, ok := found[k].([]any); !ok {
			t.Fatalf("%s should be an array, got %v", k, found[k])
		}
	}
	if _, ok := an["seasonal_relevance"].([]any); !ok {
		t.Fatalf("seasonal_relevance should be an array")
	}
}

func TestEngine_Locale(t *testing.T) {
	cases := map[string]string{
		"":        "sv",
		"en":      "en",
		"en-US":   "en",
		"sv_SE":   "sv",
		"de":      "sv",
		"zz":      "sv",
		"klingon": "sv",
	}
	for in, want := range cases {
		if got := New(WithLocale(in)).Locale(); got != want {
			t.Fatalf("locale %q = %q, want %q", in, got, want)
		}
	}

	sv := New(WithMonth(6))
	en := sv.In("en")
	if sv.Locale() != "sv" || en.Locale() != "en" {
		t.Fatalf("In should copy: %s %s", sv.Locale(), en.Locale())
	}
	if en.Month() != 6 {
		t.Fatalf("In lost the month")
	}
	if !strings.Contains(sv.Score("", "", nil).Tips[0].Tip, "taggar") {
		t.Fatalf("swedish tips expected")
	}
}

func TestEngine_Clock(t *testing.T) {
	e := New(WithClock(func() time.Time { return time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC) }))
	if e.Month() != 2 {
		t.Fatalf("month = %d", e.Month())
	}
	if e.Seasonal()[0] != "valentine" {
		t.Fatalf("seasonal = %v", e.Seasonal())
	}
	if got := New(WithMonth(13)).Seasonal(); !reflect.DeepEqual(got, taxonomy.Seasonal(0)) {
		t.Fatalf("out of range month should use the fallback, got %v", got)
	}
}

func TestEngine_Taxonomy(t *testing.T) {
	doc := `{
	  "version": 2,
	  "categories": [
	    {"name":"product","high_value":true,"terms":["mug","print"]},
	    {"name":"format","high_value":true,"terms":["pdf"]},
	    {"name":"style","high_value":true,"terms":["boho"]},
	    {"name":"occasion","high_value":true,"terms":["wedding"]},
	    {"name":"recipient","high_value":true,"terms":["gift for mom"]},
	    {"name":"business","high_value":true,"terms":["canva"]},
	    {"name":"filler","terms":["the"]},
	    {"name":"spam","terms":["sale"]}
	  ],
	  "seasonal": {"1":["a"],"2":["b"],"3":["c"],"4":["d"],"5":["e"],"6":["f"],
	               "7":["g"],"8":["h"],"9":["i"],"10":["j"],"11":["k"],"12":["l"]},
	  "seasonal_fallback": ["always"]
	}`
	tb, err := taxonomy.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e := New(WithTaxonomy(tb), WithMonth(3))

	f := e.Explain("Boho Mug", "", nil)
	if f.Title.Richness != 8 || f.Title.FrontLoading != 16 {
		t.Fatalf("title factors = %+v", f.Title)
	}
	if got := e.Seasonal(); len(got) != 1 || got[0] != "c" {
		t.Fatalf("seasonal = %v", got)
	}
	if got := e.SeasonalFor(7); len(got) != 1 || got[0] != "g" {
		t.Fatalf("seasonal july = %v", got)
	}
	if got := e.SeasonalFor(13); len(got) != 1 || got[0] != "always" {
		t.Fatalf("seasonal fallback = %v", got)
	}
	if e.Taxonomy() != tb || e.Taxonomy().Version() != 2 {
		t.Fatalf("taxonomy not carried by the engine")
	}
}

func TestExplain_MatchesScore(t *testing.T) {
	e := december(t, tipcopy.English)
	f := e.Explain(walletTitle, walletDescription, fullTags())
	if f.Breakdown() != e.Score(walletTitle, walletDescription, fullTags()).Breakdown {
		t.Fatalf("Explain and Score disagree")
	}
	if f.Description.EmojiCount != 4 {
		t.Fatalf("emoji count = %d", f.Description.EmojiCount)
	}
	if f.Keywords.SharedWords != 2 {
		t.Fatalf("shared words = %d", f.Keywords.SharedWords)
	}
}
