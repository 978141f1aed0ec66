package lexipack

// MaxCodecID is the exclusive upper bound on dictionary ids usable by the
// codec. Larger ids are valid dictionary entries but cannot be expressed in
// a 16-bit idStream slot, so lookups must treat them as absent.
const MaxCodecID = 1 << 16

// Entry is one dictionary row. (ID, Lang) is the unique key; Word is stored
// lowercase.
type Entry struct {
	ID   uint32
	Word string
	Lang Language
}

// Store is the dictionary lookup service the codec depends on.
//
// Both methods are batch-shaped on purpose: encoding or decoding a sentence
// touches many distinct tokens or ids, and one store round trip per value is
// the dominant cost. Implementations must answer each call with a single
// query over the whole set.
//
// Lookup misses are not errors — absent keys are simply omitted from the
// result map. The returned error reports store access failures only
// (connectivity, storage), and those propagate to the codec caller.
type Store interface {
	// LookupWords resolves distinct words to ids for one language. Entries
	// whose id is >= MaxCodecID are omitted along with absent words.
	LookupWords(words []string, lang Language) (map[string]uint32, error)

	// LookupIDs resolves distinct ids to words for one language.
	LookupIDs(ids []uint32, lang Language) (map[uint32]string, error)
}
