package anatomyService

import "AnatomyOverlay/pkg/nlp"

type structure struct {
	name        string
	category    string
	keywords    []string
	synonyms    []string
	description string
}

const humerusDescription = "The humerus is the long bone of the upper arm, running from the shoulder to the elbow. Proximally it meets the scapula at the glenohumeral joint and distally it articulates with the radius and ulna. It is the lever arm for shoulder and elbow flexion, extension, abduction and rotation. The radial nerve runs in the spiral groove of the shaft, so shaft fractures can injure it. Fractures cluster at the surgical neck in older adults, the shaft after direct trauma and the supracondylar region in children."

// boneAnatomy is the static description table. It carries an entry for
// every display name in the rig catalog.
var boneAnatomy = []structure{
	{
		name:     "Skull",
		category: "skull",
		keywords: []string{"skull", "head", "cranium"},
		synonyms: []string{"cranium", "head"},
		description: "The skull is the bony framework of the head, made of the cranium that encloses the brain and the facial skeleton. " +
			"Its bones are joined by immovable sutures, except for the mandible which moves at the temporomandibular joint. " +
			"The skull protects the brain and the organs of special sense and anchors the muscles of mastication and facial expression. " +
			"Skull fractures range from linear vault fractures to basal fractures that may tear the dura and leak cerebrospinal fluid.",
	},
	{
		name:        "Left Humerus (Upper Arm)",
		category:    "long_bone",
		keywords:    []string{"left", "humerus", "upper", "arm"},
		synonyms:    []string{"humerus", "upper arm bone", "left humerus"},
		description: humerusDescription,
	},
	{
		name:        "Right Humerus (Upper Arm)",
		category:    "long_bone",
		keywords:    []string{"right", "humerus", "upper", "arm"},
		synonyms:    []string{"humerus", "upper arm bone", "right humerus"},
		description: humerusDescription,
	},
	{
		name:     "Radius (Forearm - Thumb Side)",
		category: "long_bone",
		keywords: []string{"radius", "forearm", "radial"},
		synonyms: []string{"radius", "radial bone"},
		description: "The radius is the lateral forearm bone on the thumb side, spanning elbow to wrist. " +
			"It meets the capitulum of the humerus proximally, the ulna along its length and the scaphoid and lunate distally. " +
			"The radius carries most of the axial load passing from the hand to the arm and rotates around the ulna in pronation and supination. " +
			"Distal radius fractures such as Colles and Smith fractures are among the most common adult fractures, usually after a fall on an outstretched hand.",
	},
	{
		name:     "Ulna (Forearm - Pinky Side)",
		category: "long_bone",
		keywords: []string{"ulna", "forearm", "ulnar"},
		synonyms: []string{"ulna", "elbow bone"},
		description: "The ulna is the medial forearm bone on the pinky side, running parallel to the radius. " +
			"Its olecranon forms the point of the elbow and hinges on the trochlea of the humerus, while distally it meets the radius and the triangular fibrocartilage complex. " +
			"The ulna is the main stabiliser of the elbow and the fixed axis for forearm rotation. " +
			"Shaft fractures often come with radial head dislocation (Monteggia injury) or a radius fracture in both-bone forearm injuries.",
	},
	{
		name:     "Scaphoid",
		category: "carpal",
		keywords: []string{"scaphoid"},
		synonyms: []string{"navicular", "carpal navicular"},
		description: "The scaphoid is a boat-shaped carpal bone on the thumb side of the proximal row. " +
			"It articulates with the radius proximally and with the trapezium and trapezoid distally, linking the two carpal rows. " +
			"Its blood supply enters distally, which leaves the proximal pole prone to avascular necrosis. " +
			"It is the most frequently fractured carpal bone, typically after a fall on an outstretched hand, and missed fractures can fail to unite.",
	},
	{
		name:     "Lunate",
		category: "carpal",
		keywords: []string{"lunate"},
		synonyms: []string{"semilunar bone"},
		description: "The lunate is a crescent-shaped carpal bone in the middle of the proximal row. " +
			"It articulates with the radius, the scaphoid, the triquetrum, the capitate and sometimes the hamate. " +
			"It transmits grip forces from the hand to the forearm. " +
			"Loss of its blood supply causes Kienbock disease, and lunate dislocations need urgent reduction to protect the median nerve.",
	},
	{
		name:     "Triquetrum",
		category: "carpal",
		keywords: []string{"triquetrum", "triquetral"},
		synonyms: []string{"triangular bone", "cuneiform bone of the hand"},
		description: "The triquetrum is a pyramidal carpal bone on the ulnar side of the proximal row. " +
			"It articulates with the lunate, the hamate and, on its palmar face, the pisiform. " +
			"It stabilises the ulnar side of the wrist during rotation. " +
			"It is the second most commonly fractured carpal bone, usually from a dorsal chip after forced extension.",
	},
	{
		name:     "Pisiform",
		category: "carpal",
		keywords: []string{"pisiform"},
		synonyms: []string{"pea bone"},
		description: "The pisiform is a small pea-shaped sesamoid bone inside the flexor carpi ulnaris tendon. " +
			"It articulates only with the triquetrum, on the palmar side of the wrist. " +
			"It lengthens the lever arm of flexor carpi ulnaris for wrist flexion and ulnar deviation. " +
			"Fractures are rare and follow direct blows to the heel of the hand.",
	},
	{
		name:     "Trapezium",
		category: "carpal",
		keywords: []string{"trapezium"},
		synonyms: []string{"greater multangular"},
		description: "The trapezium sits at the base of the thumb in the distal carpal row. " +
			"It articulates with the scaphoid, the trapezoid, the first metacarpal and the second metacarpal. " +
			"Its saddle joint with the first metacarpal gives the thumb opposition. " +
			"It is the usual site of basal thumb osteoarthritis, which causes pain and weak pinch.",
	},
	{
		name:     "Trapezoid",
		category: "carpal",
		keywords: []string{"trapezoid"},
		synonyms: []string{"lesser multangular"},
		description: "The trapezoid is a small wedge-shaped bone of the distal carpal row between the trapezium and the capitate. " +
			"It articulates with the scaphoid proximally and the second metacarpal distally. " +
			"It gives the index metacarpal a rigid base for pinch grip. " +
			"Its sheltered position makes it the least commonly injured carpal bone.",
	},
	{
		name:     "Capitate",
		category: "carpal",
		keywords: []string{"capitate"},
		synonyms: []string{"os magnum"},
		description: "The capitate is the largest carpal bone, in the centre of the distal row. " +
			"It articulates with the scaphoid, the lunate, the trapezoid, the hamate and the third metacarpal. " +
			"It is the keystone of the carpus and carries most axial load through the wrist. " +
			"Fractures are uncommon alone and often accompany scaphoid injuries in perilunate patterns.",
	},
	{
		name:     "Hamate",
		category: "carpal",
		keywords: []string{"hamate", "hook"},
		synonyms: []string{"unciform bone", "hook of hamate"},
		description: "The hamate is a wedge-shaped bone on the ulnar side of the distal carpal row with a hook on its palmar surface. " +
			"It articulates with the lunate, the triquetrum, the capitate and the fourth and fifth metacarpals. " +
			"The hook anchors the transverse carpal ligament and bounds Guyon canal. " +
			"Hook fractures are typical in golf, baseball and racquet sports and can irritate the ulnar nerve.",
	},
	{
		name:     "Scaphoid-Trapezium Ligament",
		category: "ligament",
		keywords: []string{"scaphoid", "trapezium", "ligament"},
		synonyms: []string{"scaphotrapezial ligament", "stt ligament"},
		description: "The scaphotrapezial ligament joins the distal pole of the scaphoid to the trapezium on the radial side of the wrist. " +
			"It stabilises the scaphotrapeziotrapezoid joint and helps control scaphoid flexion. " +
			"Degeneration of this joint is a common source of radial wrist pain in older adults.",
	},
	{
		name:     "Lunate-Trapezoid Ligament",
		category: "ligament",
		keywords: []string{"lunate", "trapezoid", "ligament"},
		synonyms: []string{"lunotrapezoid ligament"},
		description: "This band represents the midcarpal restraints running from the lunate toward the radial distal row. " +
			"The midcarpal ligaments coordinate motion between the proximal and distal carpal rows. " +
			"Their laxity contributes to midcarpal instability and painful clunking of the wrist.",
	},
	{
		name:     "Triquetrum-Capitate Ligament",
		category: "ligament",
		keywords: []string{"triquetrum", "capitate", "ligament"},
		synonyms: []string{"triquetrocapitate ligament"},
		description: "The triquetrocapitate ligament runs on the palmar side of the wrist from the triquetrum to the capitate. " +
			"It is part of the ulnar arm of the arcuate ligament that supports the midcarpal joint. " +
			"Injury to it is associated with palmar midcarpal instability.",
	},
	{
		name:     "Pisiform-Hamate Ligament",
		category: "ligament",
		keywords: []string{"pisiform", "hamate", "ligament"},
		synonyms: []string{"pisohamate ligament"},
		description: "The pisohamate ligament extends from the pisiform to the hook of the hamate. " +
			"It continues the pull of flexor carpi ulnaris onto the hamate and forms the floor of Guyon canal. " +
			"Its relation to the canal makes it relevant to ulnar nerve compression at the wrist.",
	},
	{
		name:     "1st Metacarpal (Thumb)",
		category: "metacarpal",
		keywords: []string{"1st", "metacarpal", "thumb"},
		synonyms: []string{"thumb metacarpal", "first metacarpal"},
		description: "The first metacarpal is the shortest and thickest metacarpal and forms the skeleton of the thumb ray. " +
			"Its base meets the trapezium in a saddle joint that allows opposition and circumduction. " +
			"It sits at nearly a right angle to the palm and carries the forces of pinch and grip. " +
			"Base fractures such as Bennett and Rolando fractures follow axial loads and need careful reduction to preserve thumb function.",
	},
	{
		name:     "1st Metacarpal Base (Thumb)",
		category: "metacarpal",
		keywords: []string{"1st", "metacarpal", "base", "thumb"},
		synonyms: []string{"thumb metacarpal base", "base of first metacarpal"},
		description: "The base of the first metacarpal is the broad proximal end of the thumb ray. " +
			"Its concave saddle surface meets the trapezium at the carpometacarpal joint of the thumb. " +
			"The anterior oblique ligament tethers it to the trapezium and resists dorsal subluxation. " +
			"Intra-articular base fractures (Bennett and Rolando) are displaced by the pull of abductor pollicis longus.",
	},
	{
		name:     "2nd Metacarpal (Index)",
		category: "metacarpal",
		keywords: []string{"2nd", "metacarpal", "index"},
		synonyms: []string{"index metacarpal", "second metacarpal"},
		description: "The second metacarpal is the longest metacarpal and supports the index finger. " +
			"Its base articulates with the trapezoid, the trapezium and the capitate in a nearly rigid joint. " +
			"That rigidity makes it the stable post for precision pinch and pointing. " +
			"Shaft fractures usually heal well with conservative care.",
	},
	{
		name:     "3rd Metacarpal (Middle)",
		category: "metacarpal",
		keywords: []string{"3rd", "metacarpal", "middle"},
		synonyms: []string{"middle metacarpal", "third metacarpal"},
		description: "The third metacarpal supports the middle finger and has a styloid process at its base. " +
			"It articulates mainly with the capitate, forming the immobile central pillar of the hand. " +
			"It carries the largest axial load in power grip. " +
			"Isolated fractures are uncommon and usually follow crushing or high-energy injuries.",
	},
	{
		name:     "4th Metacarpal (Ring)",
		category: "metacarpal",
		keywords: []string{"4th", "metacarpal", "ring"},
		synonyms: []string{"ring metacarpal", "fourth metacarpal"},
		description: "The fourth metacarpal supports the ring finger and articulates with the hamate and capitate. " +
			"Its carpometacarpal joint allows a little flexion that deepens the palm in power grip. " +
			"It shapes the transverse arch of the hand. " +
			"Rotational malalignment after fracture causes the ring finger to cross its neighbours on flexion.",
	},
	{
		name:     "5th Metacarpal (Pinky)",
		category: "metacarpal",
		keywords: []string{"5th", "metacarpal", "pinky", "little"},
		synonyms: []string{"pinky metacarpal", "little finger metacarpal", "fifth metacarpal"},
		description: "The fifth metacarpal supports the little finger and articulates with the hamate. " +
			"After the thumb it has the most mobile carpometacarpal joint, letting the hand cup and oppose the thumb. " +
			"Neck fractures from punching a hard object are the classic boxer fracture. " +
			"Some angulation is tolerated thanks to that mobility, but rotation must be corrected.",
	},
	{
		name:     "Thumb Proximal Phalanx",
		category: "phalanx",
		keywords: []string{"thumb", "proximal", "phalanx"},
		synonyms: []string{"proximal phalanx of the thumb"},
		description: "The proximal phalanx of the thumb lies between the first metacarpal and the interphalangeal joint. " +
			"It meets the metacarpal head at the metacarpophalangeal joint and the distal phalanx distally. " +
			"Its base receives the ulnar collateral ligament, whose tear is the skier thumb injury. " +
			"Fractures follow crushing or hyperextension and may need fixation to keep a stable pinch.",
	},
	{
		name:     "Thumb Distal Phalanx",
		category: "phalanx",
		keywords: []string{"thumb", "distal", "phalanx", "tip"},
		synonyms: []string{"distal phalanx of the thumb", "thumb tip"},
		description: "The distal phalanx of the thumb forms the thumb tip, with a broad tuft supporting the nail bed and pulp. " +
			"It articulates with the proximal phalanx at the interphalangeal joint. " +
			"Flexor pollicis longus inserts on its base and powers the pinch. " +
			"Tuft fractures after crushing often come with nail bed lacerations.",
	},
	{
		name:     "Index Proximal Phalanx",
		category: "phalanx",
		keywords: []string{"index", "proximal", "phalanx"},
		synonyms: []string{"proximal phalanx of the index finger"},
		description: "The proximal phalanx of the index finger links the second metacarpal to the middle phalanx. " +
			"It provides the main lever arm for flexion at the metacarpophalangeal joint. " +
			"The index finger leads precision pinch and pointing. " +
			"Malrotated fractures here cause the finger to scissor over its neighbour.",
	},
	{
		name:     "Index Middle Phalanx",
		category: "phalanx",
		keywords: []string{"index", "middle", "phalanx"},
		synonyms: []string{"middle phalanx of the index finger"},
		description: "The middle phalanx of the index finger lies between the proximal and distal interphalangeal joints. " +
			"Flexor digitorum superficialis inserts on it to flex the proximal interphalangeal joint. " +
			"Proximal interphalangeal fracture-dislocations are common sports injuries and can leave lasting stiffness.",
	},
	{
		name:     "Index Distal Phalanx",
		category: "phalanx",
		keywords: []string{"index", "distal", "phalanx", "tip"},
		synonyms: []string{"distal phalanx of the index finger", "index fingertip"},
		description: "The distal phalanx of the index finger forms the fingertip and supports the nail and pulp. " +
			"Flexor digitorum profundus inserts on its base for independent tip flexion. " +
			"The fingertip is densely innervated for touch. " +
			"Extensor avulsion at its base produces a mallet finger.",
	},
	{
		name:     "Middle Proximal Phalanx",
		category: "phalanx",
		keywords: []string{"middle", "proximal", "phalanx"},
		synonyms: []string{"proximal phalanx of the middle finger"},
		description: "The proximal phalanx of the middle finger is usually the longest phalanx of the hand. " +
			"It articulates with the third metacarpal and the middle phalanx. " +
			"Its central position puts it under high load in power grip. " +
			"Misaligned fractures noticeably weaken grip.",
	},
	{
		name:     "Middle Middle Phalanx",
		category: "phalanx",
		keywords: []string{"middle", "phalanx"},
		synonyms: []string{"middle phalanx of the middle finger"},
		description: "The middle phalanx of the middle finger takes part in both interphalangeal joints of the longest finger. " +
			"Flexor digitorum superficialis inserts on its shaft. " +
			"The length of the finger makes it prone to jamming injuries in ball sports.",
	},
	{
		name:     "Middle Distal Phalanx",
		category: "phalanx",
		keywords: []string{"middle", "distal", "phalanx", "tip"},
		synonyms: []string{"distal phalanx of the middle finger", "middle fingertip"},
		description: "The distal phalanx of the middle finger forms the tip of the longest finger. " +
			"Flexor digitorum profundus inserts on its base. " +
			"It is frequently involved in workplace crush injuries, with tuft fractures and nail bed damage.",
	},
	{
		name:     "Ring Proximal Phalanx",
		category: "phalanx",
		keywords: []string{"ring", "proximal", "phalanx"},
		synonyms: []string{"proximal phalanx of the ring finger"},
		description: "The proximal phalanx of the ring finger articulates with the fourth metacarpal and the middle phalanx. " +
			"The ring finger contributes strongly to power grip. " +
			"Shared tendon connections mean injuries here affect the motion of neighbouring fingers.",
	},
	{
		name:     "Ring Middle Phalanx",
		category: "phalanx",
		keywords: []string{"ring", "middle", "phalanx"},
		synonyms: []string{"middle phalanx of the ring finger"},
		description: "The middle phalanx of the ring finger bridges the two interphalangeal joints. " +
			"Flexor digitorum superficialis inserts on it. " +
			"Ring avulsion injuries, when a worn ring catches during a fall, can involve this segment.",
	},
	{
		name:     "Ring Distal Phalanx",
		category: "phalanx",
		keywords: []string{"ring", "distal", "phalanx", "tip"},
		synonyms: []string{"distal phalanx of the ring finger", "ring fingertip"},
		description: "The distal phalanx of the ring finger forms the fingertip and nail bed support. " +
			"Flexor digitorum profundus inserts on its base, and avulsion of that tendon (jersey finger) most often affects the ring finger. " +
			"Door-slam crush injuries are common here.",
	},
	{
		name:     "Pinky Proximal Phalanx",
		category: "phalanx",
		keywords: []string{"pinky", "little", "proximal", "phalanx"},
		synonyms: []string{"proximal phalanx of the little finger", "proximal phalanx of the pinky"},
		description: "The proximal phalanx of the little finger is the shortest proximal phalanx. " +
			"It articulates with the fifth metacarpal and the middle phalanx. " +
			"Together with the ring finger the little finger supplies much of grip strength. " +
			"Its exposed ulnar position makes fractures from falls and impacts common.",
	},
	{
		name:     "Pinky Middle Phalanx",
		category: "phalanx",
		keywords: []string{"pinky", "little", "middle", "phalanx"},
		synonyms: []string{"middle phalanx of the little finger", "middle phalanx of the pinky"},
		description: "The middle phalanx of the little finger is the shortest middle phalanx. " +
			"It takes part in both interphalangeal joints and receives flexor digitorum superficialis. " +
			"Dislocations of the little finger are frequent in ball sports.",
	},
	{
		name:     "Pinky Distal Phalanx",
		category: "phalanx",
		keywords: []string{"pinky", "little", "distal", "phalanx", "tip"},
		synonyms: []string{"distal phalanx of the little finger", "distal phalanx of the pinky", "pinky tip"},
		description: "The distal phalanx of the little finger is the smallest distal phalanx. " +
			"It supports the nail and pulp and receives flexor digitorum profundus. " +
			"Crush injuries in doors and machinery are common, and mallet deformity follows extensor injury.",
	},
}

var descriptions = buildDescriptions()

func buildDescriptions() map[string]string {
	out := make(map[string]string, len(boneAnatomy))
	for _, s := range boneAnatomy {
		out[s.name] = s.description
	}
	return out
}

// Mappings feeds the static table to the name matcher.
func Mappings() []nlp.StructureMapping {
	out := make([]nlp.StructureMapping, 0, len(boneAnatomy))
	for _, s := range boneAnatomy {
		out = append(out, nlp.StructureMapping{
			Name:     s.name,
			Keywords: s.keywords,
			Synonyms: s.synonyms,
			Category: s.category,
		})
	}
	return out
}
