package mongo

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFilter builds the lesson search query. A lesson matches when its topic
// or location contains q as a case-insensitive substring, or — only when q
// parses fully as a number — its price or space equals that number exactly.
// Equality, not range: typing "5" finds lessons costing exactly 5 or with
// exactly 5 slots left.
func searchFilter(q string) bson.M {
	if q == "" {
		return bson.M{}
	}

	// QuoteMeta keeps the substring semantics: "c++" must not be a regex error.
	contains := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}

	or := bson.A{
		bson.M{"topic": contains},
		bson.M{"location": contains},
	}
	if n, err := strconv.ParseFloat(q, 64); err == nil {
		or = append(or, bson.M{"price": n}, bson.M{"space": n})
	}

	return bson.M{"$or": or}
}
