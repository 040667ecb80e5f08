package mqtt

// TopicPrefix is the base of every luxd topic.
const TopicPrefix = "luxd"

// Topics provides builders for luxd MQTT topics. Using these helpers
// keeps topic naming consistent across the codebase.
type Topics struct{}

// SystemStatus returns the service liveness topic. Published retained,
// and used as the LWT topic so subscribers see unexpected disconnects.
//
// Topic: luxd/status
func (Topics) SystemStatus() string {
	return TopicPrefix + "/status"
}

// ShowPlay returns the cue topic that starts a show.
//
// Payload: {"show": "<name>", "start_at": <seconds>}
//
// Topic: luxd/show/play
func (Topics) ShowPlay() string {
	return TopicPrefix + "/show/play"
}

// ShowStop returns the cue topic that stops the current show. The
// payload is ignored.
//
// Topic: luxd/show/stop
func (Topics) ShowStop() string {
	return TopicPrefix + "/show/stop"
}

// ShowStatus returns the retained playback status topic.
//
// Topic: luxd/show/status
func (Topics) ShowStatus() string {
	return TopicPrefix + "/show/status"
}
