package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/learnmate/learnmate/core"
)

// Key prefixes for different data types
const (
	materialPrefix       = "matrec"
	materialOwnerPrefix  = "matown"
	chunkPrefix          = "chkrec"
	chunkMaterialPrefix  = "chkmat"
	quizPrefix           = "qzrec"
	quizIDSeq            = "qzrecseq"
	contentPrefix        = "screc"
	contentIDSeq         = "screcseq"
	attemptPrefix        = "atrec"
	attemptLearnerPrefix = "atlrn"
	attemptIDSeq         = "atrecseq"
	analysisPrefix       = "anrec"
	analysisIDSeq        = "anrecseq"
	pathPrefix           = "lprec"
	collectionPrefix     = "veccol"
	vectorPrefix         = "vecrec"
	vectorSeq            = "vecrecseq"
)

// makeMaterialKey generates a key for a material by ID.
func makeMaterialKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", materialPrefix, id))
}

// makeMaterialOwnerKey generates a composite key for the owner index.
// Format: prefix:ownerID:materialID
func makeMaterialOwnerKey(ownerID, materialID core.ID) []byte {
	prefix := materialOwnerPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	// BigEndian so lexicographic sort matches numeric order
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(materialID))
	return buf
}

// makePartialMaterialOwnerKey generates a partial key for owner queries.
func makePartialMaterialOwnerKey(ownerID core.ID) []byte {
	prefix := materialOwnerPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	return buf
}

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkPrefix, id))
}

// makeChunkMaterialKey generates a composite key for the material index.
// Format: prefix:materialID:ordinal. Iterating the prefix yields chunks in
// page order.
func makeChunkMaterialKey(materialID core.ID, ordinal int) []byte {
	prefix := chunkMaterialPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(materialID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(ordinal))
	return buf
}

// makePartialChunkMaterialKey generates a partial key for material chunk scans.
func makePartialChunkMaterialKey(materialID core.ID) []byte {
	prefix := chunkMaterialPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(materialID))
	return buf
}

// makeQuizKey generates a key for a quiz by ID.
func makeQuizKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", quizPrefix, id))
}

// makeContentKey generates a key for a study content record by ID.
func makeContentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", contentPrefix, id))
}

// makeAttemptKey generates a key for an attempt by ID.
func makeAttemptKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", attemptPrefix, id))
}

// makeAttemptLearnerKey generates a composite key for the learner-time index.
// Format: prefix:learnerID:timestamp:attemptID. Iterating a learner's prefix
// yields attempts ordered by completion time.
func makeAttemptLearnerKey(learnerID core.ID, completedAt time.Time, attemptID core.ID) []byte {
	prefix := attemptLearnerPrefix + ":"
	buf := make([]byte, len(prefix)+24)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(learnerID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(completedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(attemptID))
	return buf
}

// makePartialAttemptLearnerKey generates a partial key for learner scans.
func makePartialAttemptLearnerKey(learnerID core.ID) []byte {
	prefix := attemptLearnerPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(learnerID))
	return buf
}

// makeAnalysisKey generates a key for an analysis by its attempt ID.
// Keying by attempt makes recomputation overwrite the prior record.
func makeAnalysisKey(attemptID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", analysisPrefix, attemptID))
}

// makePathKey generates a key for a learning path by learner ID.
func makePathKey(learnerID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", pathPrefix, learnerID))
}

// makeCollectionKey generates a registry key for a vector collection.
func makeCollectionKey(collection string) []byte {
	return []byte(fmt.Sprintf("%s:%s", collectionPrefix, collection))
}

// makeVectorRecordKey generates a key for a vector record within a collection.
func makeVectorRecordKey(collection string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", vectorPrefix, collection, id))
}

// makePartialVectorRecordKey generates a prefix for scanning a collection.
func makePartialVectorRecordKey(collection string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", vectorPrefix, collection))
}
