// Package wallpaper deterministically maps a free-text prompt to one of a
// small curated pool of stock wallpaper URLs. There is no image generation
// backend: the same prompt always resolves to the same image, which gives
// regeneration the feel of a cache without keeping any state.
package wallpaper

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// baseDims is the portrait encoding embedded in every catalog template.
const baseDims = "w=512&h=910"

type category struct {
	keyword string
	urls    []string
}

// catalog order is load-bearing: the first keyword found as a substring of
// the combined prompt+style text wins.
var catalog = []category{
	{keyword: "nature", urls: []string{
		"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=512&h=910&fit=crop&auto=format",
	}},
	{keyword: "city", urls: []string{
		"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1519501025264-65ba15a82390?w=512&h=910&fit=crop&auto=format",
	}},
	{keyword: "abstract", urls: []string{
		"https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1557683304-673a23048d34?w=512&h=910&fit=crop&auto=format",
	}},
	{keyword: "space", urls: []string{
		"https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=512&h=910&fit=crop&auto=format",
	}},
	{keyword: "dark", urls: []string{
		"https://images.unsplash.com/photo-1618556450991-2f1af64e8191?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=512&h=910&fit=crop&auto=format",
	}},
	{keyword: "minimal", urls: []string{
		"https://images.unsplash.com/photo-1557683316-973673baf926?w=512&h=910&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1574169208507-84376144848b?w=512&h=910&fit=crop&auto=format",
	}},
}

// defaultBucket serves prompts that match no catalog keyword. Never empty.
var defaultBucket = []string{
	"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=512&h=910&fit=crop&auto=format",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=512&h=910&fit=crop&auto=format",
	"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=512&h=910&fit=crop&auto=format",
	"https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=512&h=910&fit=crop&auto=format",
}

var aspectDims = map[string]string{
	"16:9": "w=910&h=512",
	"1:1":  "w=512&h=512",
	"3:4":  "w=512&h=683",
}

// Select picks a wallpaper URL for the given prompt, optional style hint and
// requested aspect ratio. Selection is a pure function of its arguments:
// identical inputs always yield the identical URL. It is total over all
// string inputs and safe for concurrent use.
//
// The keyword match runs over the lower-cased prompt+style; the index into
// the matched bucket comes from the MD5 digest of the raw, un-normalized
// prompt bytes. Unknown aspect ratios pass through unchanged.
func Select(prompt, style, aspectRatio string) (imageURL, effectiveAspectRatio string) {
	combined := strings.ToLower(prompt) + " " + strings.ToLower(style)

	urls := defaultBucket
	for _, c := range catalog {
		if strings.Contains(combined, c.keyword) {
			urls = c.urls
			break
		}
	}

	sum := md5.Sum([]byte(prompt))
	digest := hex.EncodeToString(sum[:])
	n, _ := strconv.ParseUint(digest[:2], 16, 64)
	imageURL = urls[int(n)%len(urls)]

	if dims, ok := aspectDims[aspectRatio]; ok {
		imageURL = strings.Replace(imageURL, baseDims, dims, 1)
	}
	return imageURL, aspectRatio
}
