package rig

import "AnatomyOverlay/internal/entity"

type BodyPart struct {
	Name    string
	Indices []int
}

// BodyParts groups pose keypoints into the coarse parts reported to the
// client as detected.
var BodyParts = []BodyPart{
	{"SKULL", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	{"LEFT HUMERUS", []int{PoseLeftShoulder, PoseLeftElbow}},
	{"LEFT RADIUS", []int{PoseLeftElbow, PoseLeftWrist}},
	{"RIGHT HUMERUS", []int{PoseRightShoulder, PoseRightElbow}},
	{"RIGHT RADIUS", []int{PoseRightElbow, PoseRightWrist}},
	{"SPINE", []int{PoseLeftShoulder, PoseRightShoulder, PoseLeftHip, PoseRightHip}},
	{"LEFT FEMUR", []int{PoseLeftHip, PoseLeftKnee}},
	{"LEFT TIBIA", []int{PoseLeftKnee, PoseLeftAnkle}},
	{"RIGHT FEMUR", []int{PoseRightHip, PoseRightKnee}},
	{"RIGHT TIBIA", []int{PoseRightKnee, PoseRightAnkle}},
}

// DetectParts lists the parts with at least one confidently tracked pose
// keypoint. Hands count as soon as the detector returns them.
func DetectParts(snap entity.LandmarkSnapshot) []string {
	parts := make([]string, 0, len(BodyParts)+2)

	for _, part := range BodyParts {
		for _, idx := range part.Indices {
			if idx < len(snap.Pose) && tracked(snap.Pose[idx]) {
				parts = append(parts, part.Name)
				break
			}
		}
	}

	if len(snap.LeftHand) > 0 {
		parts = append(parts, "LEFT HAND")
	}
	if len(snap.RightHand) > 0 {
		parts = append(parts, "RIGHT HAND")
	}

	return parts
}

func tracked(kp entity.Keypoint) bool {
	return kp.Visibility != nil && *kp.Visibility > VisibilityThreshold
}
