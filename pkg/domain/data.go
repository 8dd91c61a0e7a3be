package domain

var defaultRegistry = NewRegistry(
	[]string{
		"Healthcare",
		"Finance",
		"Aerospace",
		"Automotive",
		"Telecom",
		"Energy",
		"E-commerce",
		"Education",
		OtherKey,
	},
	map[string]Entry{
		"Healthcare": {
			Title:     "Healthcare & Medical Devices",
			Standards: []string{"IEC 62304", "FDA 21 CFR Part 820", "ISO 13485", "ISO 14971", "HIPAA", "HL7", "FHIR", "DICOM"},
			Sections: []string{
				"Introduction & Medical Device Classification",
				"Software Development Plan",
				"Software Requirements Specification",
				"Software Architecture",
				"Software Hazard Analysis (Risk Management)",
				"Verification & Validation Plan",
				"Cybersecurity Requirements (IEC 81001-5)",
				"Off-the-Shelf (OTS) Software Management",
				"Traceability Matrix",
				"Clinical Validation Requirements",
			},
			Note: "Your SRS will include medical device-specific requirements following IEC 62304 standards with proper risk classification and safety requirements.",
		},
		"Finance": {
			Title:     "Financial Services & Fintech",
			Standards: []string{"PCI DSS", "SOX", "GDPR", "CCPA", "GLBA", "BSA", "Dodd-Frank", "KYC", "AML", "OFAC"},
			Sections: []string{
				"Introduction & Regulatory Jurisdiction",
				"Regulatory Compliance Requirements (AML/KYC/CTF)",
				"Security & Data Protection (PCI DSS)",
				"Transaction Processing Requirements",
				"Reporting & Audit Requirements",
				"Risk Management Requirements",
				"Business Continuity & Disaster Recovery",
				"Third-Party Risk Management",
				"Fraud Detection & Prevention",
			},
			Note: "Your SRS will include financial regulatory compliance requirements for payment processing, data security, and audit trails.",
		},
		"Aerospace": {
			Title:     "Aerospace & Aviation",
			Standards: []string{"DO-178C/ED-12C", "DO-330", "ARP4754A", "DO-254", "ASIL/DAL Classification"},
			Sections: []string{
				"Introduction & Certification Basis",
				"Plan for Software Aspects of Certification (PSAC)",
				"Software Development Plan",
				"Software Verification Plan",
				"Software Configuration Management Plan",
				"Software Quality Assurance Plan",
				"Software Requirements (High-Level & Low-Level)",
				"Software Architecture & Partitioning",
				"Tool Qualification (DO-330)",
				"Bidirectional Traceability",
			},
			Note: "Your SRS will follow DO-178C standards with appropriate Design Assurance Level (DAL) classification and certification requirements.",
		},
		"Automotive": {
			Title:     "Automotive",
			Standards: []string{"ISO 26262", "ASPICE", "ISO 21434", "MISRA", "AUTOSAR", "ASIL Classification"},
			Sections: []string{
				"Introduction & Scope",
				"Functional Safety Concept (ISO 26262)",
				"System Requirements",
				"Software Safety Requirements (ASIL)",
				"Software Architecture Design (AUTOSAR)",
				"Cybersecurity Requirements (ISO 21434)",
				"ASPICE Process Requirements",
				"Verification & Validation (Code Coverage)",
				"Coding Standards Compliance (MISRA)",
				"Freedom from Interference",
			},
			Note: "Your SRS will include automotive functional safety requirements with ASIL classification and AUTOSAR compliance.",
		},
		"Telecom": {
			Title:     "Telecommunications",
			Standards: []string{"3GPP", "ETSI", "ITU-T", "IETF RFCs", "5G NR", "IMS"},
			Sections: []string{
				"Introduction & Network Context (3GPP Release)",
				"3GPP Specification Compliance (Stage 1/2/3)",
				"Network Functions Requirements",
				"Protocol Stack Requirements",
				"Interface Requirements (N1, N2, N3, etc.)",
				"Network Management Requirements",
				"Quality of Service (QoS) Requirements",
				"Security Requirements (5G-AKA)",
				"Interoperability Requirements",
			},
			Note: "Your SRS will follow 3GPP standards with proper network function specifications and protocol compliance.",
		},
		"Energy": {
			Title:     "Energy & Utilities",
			Standards: []string{"NERC CIP", "FERC", "IEC 61850", "IEEE 1547", "DNP3", "Modbus"},
			Sections: []string{
				"Introduction & System Overview",
				"Regulatory Compliance (NERC CIP)",
				"SCADA & Control Requirements",
				"Smart Metering Requirements (AMI)",
				"Grid Management Requirements",
				"Cybersecurity Requirements (ICS Security)",
				"Integration Requirements (GIS/CIS)",
				"Real-time Monitoring & Control",
				"Disaster Recovery & Business Continuity",
			},
			Note: "Your SRS will include critical infrastructure protection requirements and SCADA system specifications.",
		},
		"E-commerce": {
			Title:     "E-commerce & Retail",
			Standards: []string{"PCI DSS", "GDPR", "CCPA", "SOC 2", "ISO 27001"},
			Sections: []string{
				"Introduction & Business Model",
				"User Management Requirements",
				"Product Catalog Requirements",
				"Shopping Cart & Checkout",
				"Order Management",
				"Payment Processing (PCI DSS)",
				"Inventory Management",
				"Analytics & Reporting",
				"Security & Privacy Compliance",
			},
			Note: "Your SRS will include e-commerce best practices with payment security and customer data protection requirements.",
		},
		"Education": {
			Title:     "Education",
			Standards: []string{"FERPA", "COPPA", "GDPR", "Section 508", "WCAG 2.1"},
			Sections: []string{
				"Introduction & Educational Context",
				"Student Data Privacy (FERPA/COPPA)",
				"Learning Management System Requirements",
				"Content Management & Delivery",
				"Assessment & Grading System",
				"Accessibility Requirements (WCAG/Section 508)",
				"Integration Requirements (LTI/SIS)",
				"Analytics & Reporting",
				"Security & Compliance",
			},
			Note: "Your SRS will include educational data privacy requirements and accessibility compliance for learning systems.",
		},
		OtherKey: {
			Title:     "General Software Requirements Specification",
			Standards: []string{"IEEE 830", "ISO/IEC/IEEE 29148"},
			Sections: []string{
				"Introduction (Purpose, Scope, Definitions, References)",
				"Overall Description (Product Perspective, User Characteristics, Operating Environment)",
				"System Features / Functional Requirements",
				"External Interface Requirements (User, Hardware, Software, Communication)",
				"Non-Functional Requirements (Performance, Security, Reliability, Scalability)",
				"Assumptions and Dependencies",
				"Glossary",
			},
			Note: "Your SRS will follow standard IEEE 830 format with general software engineering best practices suitable for various domains.",
		},
	},
)
