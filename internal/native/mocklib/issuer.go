package mocklib

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

func (l *Library) CreateSchema(name, version, issuerID *byte, attrNames native.FfiStrList, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateSchema, func() error {
		s := &schema{
			Name:      native.GoString(name),
			Version:   native.GoString(version),
			IssuerID:  native.GoString(issuerID),
			AttrNames: attrNames.Strings(),
		}
		if err := s.validate(); err != nil {
			return err
		}
		*result = l.put(typeSchema, s)
		return nil
	})
}

func (l *Library) CreateCredentialDefinition(schemaID *byte, schemaHandle native.ObjectHandle, tag, issuerID, signatureType *byte, supportRevocation int8, credDef, credDefPrivate, keyProof *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateCredentialDefinition, func() error {
		s, err := load[schema](l, schemaHandle, typeSchema)
		if err != nil {
			return err
		}
		sid, err := required(schemaID, "schema_id")
		if err != nil {
			return err
		}
		iid, err := required(issuerID, "issuer_id")
		if err != nil {
			return err
		}
		if sig := native.GoString(signatureType); sig != "CL" {
			return inputErr("Invalid signature type %q", sig)
		}

		cd := &credentialDefinition{
			SchemaID: sid,
			Type:     "CL",
			Tag:      native.GoString(tag),
			IssuerID: iid,
			Value: credDefValue{Primary: primaryKey{
				N:     opaque(),
				S:     opaque(),
				R:     map[string]string{"master_secret": opaque()},
				Rctxt: opaque(),
				Z:     opaque(),
			}},
		}
		kcp := &keyCorrectnessProof{C: opaque(), XzCap: opaque()}
		for _, a := range s.AttrNames {
			cd.Value.Primary.R[a] = opaque()
			kcp.XrCap = append(kcp.XrCap, [2]string{a, opaque()})
		}
		if supportRevocation != 0 {
			cd.Value.Revocation = &revocationKey{G: opaque(), H: opaque(), PK: opaque(), Y: opaque()}
		}
		priv := &credentialDefinitionPrivate{}
		priv.Value.PKey.P = opaque()
		priv.Value.PKey.Q = opaque()

		*credDef = l.put(typeCredentialDefinition, cd)
		*credDefPrivate = l.put(typeCredentialDefinitionPriv, priv)
		*keyProof = l.put(typeKeyCorrectnessProof, kcp)
		return nil
	})
}

func (l *Library) CreateRevocationRegistryDef(credDef native.ObjectHandle, credDefID, issuerID, tag, revRegType *byte, maxCredNum int64, tailsDirPath *byte, regDef, regDefPrivate *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateRevocationRegistryDef, func() error {
		cd, err := load[credentialDefinition](l, credDef, typeCredentialDefinition)
		if err != nil {
			return err
		}
		if cd.Value.Revocation == nil {
			return inputErr("Credential definition does not support revocation")
		}
		cdid, err := required(credDefID, "cred_def_id")
		if err != nil {
			return err
		}
		iid, err := required(issuerID, "issuer_id")
		if err != nil {
			return err
		}

		dir := native.GoString(tailsDirPath)
		if dir == "" {
			dir = os.TempDir()
		}
		def := &revocationRegistryDefinition{
			IssuerID:     iid,
			RevocDefType: native.GoString(revRegType),
			Tag:          native.GoString(tag),
			CredDefID:    cdid,
		}
		def.Value.MaxCredNum = maxCredNum
		def.Value.PublicKeys.AccumKey.Z = opaque()
		def.Value.TailsHash = digest(cdid, def.Tag, def.Value.PublicKeys.AccumKey.Z)
		def.Value.TailsLocation = filepath.Join(dir, def.Value.TailsHash)
		if err := def.validate(); err != nil {
			return err
		}
		priv := &revocationRegistryDefinitionPrivate{}
		priv.Value.Gamma = opaque()

		*regDef = l.put(typeRevRegDef, def)
		*regDefPrivate = l.put(typeRevRegDefPrivate, priv)
		return nil
	})
}

func (l *Library) RevocationRegistryDefinitionGetAttribute(handle native.ObjectHandle, name *byte, result **byte) native.ErrorCode {
	return l.run(native.FnRevocationRegistryDefinitionGetAttribute, func() error {
		def, err := load[revocationRegistryDefinition](l, handle, typeRevRegDef)
		if err != nil {
			return err
		}
		var v string
		switch attr := native.GoString(name); attr {
		case "id":
			if def.ID == "" {
				return inputErr("Unsupported attribute: id")
			}
			v = def.ID
		case "max_cred_num":
			v = strconv.FormatInt(def.Value.MaxCredNum, 10)
		case "tails_hash":
			v = def.Value.TailsHash
		case "tails_location":
			v = def.Value.TailsLocation
		default:
			return inputErr("Unsupported attribute: %s", attr)
		}
		*result = l.allocString(v)
		return nil
	})
}

func (l *Library) CreateRevocationStatusList(credDef native.ObjectHandle, revRegDefID *byte, revRegDef, revRegDefPrivate native.ObjectHandle, issuerID *byte, issuanceByDefault int8, timestamp int64, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateRevocationStatusList, func() error {
		if _, err := load[credentialDefinition](l, credDef, typeCredentialDefinition); err != nil {
			return err
		}
		def, err := load[revocationRegistryDefinition](l, revRegDef, typeRevRegDef)
		if err != nil {
			return err
		}
		if _, err := load[revocationRegistryDefinitionPrivate](l, revRegDefPrivate, typeRevRegDefPrivate); err != nil {
			return err
		}
		id, err := required(revRegDefID, "rev_reg_def_id")
		if err != nil {
			return err
		}

		bit := 1
		if issuanceByDefault != 0 {
			bit = 0
		}
		list := &revocationStatusList{
			RevRegDefID:        id,
			IssuerID:           native.GoString(issuerID),
			RevocationList:     make([]int, def.Value.MaxCredNum),
			CurrentAccumulator: opaque(),
		}
		for i := range list.RevocationList {
			list.RevocationList[i] = bit
		}
		if timestamp >= 0 {
			list.Timestamp = &timestamp
		}
		*result = l.put(typeRevocationStatusList, list)
		return nil
	})
}

func (l *Library) UpdateRevocationStatusList(credDef, revRegDef, revRegDefPrivate, current native.ObjectHandle, issued, revoked native.FfiI32List, timestamp int64, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnUpdateRevocationStatusList, func() error {
		if _, err := load[credentialDefinition](l, credDef, typeCredentialDefinition); err != nil {
			return err
		}
		if _, err := load[revocationRegistryDefinition](l, revRegDef, typeRevRegDef); err != nil {
			return err
		}
		if _, err := load[revocationRegistryDefinitionPrivate](l, revRegDefPrivate, typeRevRegDefPrivate); err != nil {
			return err
		}
		cur, err := load[revocationStatusList](l, current, typeRevocationStatusList)
		if err != nil {
			return err
		}

		next := *cur
		next.RevocationList = append([]int(nil), cur.RevocationList...)
		set := func(idxs []int32, bit int) error {
			for _, idx := range idxs {
				if idx < 1 || int(idx) > len(next.RevocationList) {
					return &failure{code: codeInvalidUserRevocID, message: "Invalid revocation index " + strconv.Itoa(int(idx))}
				}
				next.RevocationList[idx-1] = bit
			}
			return nil
		}
		if err := set(issued.Ints(), 0); err != nil {
			return err
		}
		if err := set(revoked.Ints(), 1); err != nil {
			return err
		}
		next.CurrentAccumulator = opaque()
		if timestamp >= 0 {
			next.Timestamp = &timestamp
		}
		*result = l.put(typeRevocationStatusList, &next)
		return nil
	})
}

func (l *Library) UpdateRevocationStatusListTimestampOnly(timestamp int64, current native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnUpdateRevocationStatusListTimestampOnly, func() error {
		cur, err := load[revocationStatusList](l, current, typeRevocationStatusList)
		if err != nil {
			return err
		}
		next := *cur
		next.RevocationList = append([]int(nil), cur.RevocationList...)
		next.Timestamp = &timestamp
		*result = l.put(typeRevocationStatusList, &next)
		return nil
	})
}

func (l *Library) CreateOrUpdateRevocationState(revRegDef, statusList native.ObjectHandle, revRegIdx int64, tailsPath *byte, oldState, oldStatusList native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateOrUpdateRevocationState, func() error {
		def, err := load[revocationRegistryDefinition](l, revRegDef, typeRevRegDef)
		if err != nil {
			return err
		}
		list, err := load[revocationStatusList](l, statusList, typeRevocationStatusList)
		if err != nil {
			return err
		}
		if (oldState == 0) != (oldStatusList == 0) {
			return inputErr("Old revocation state and old status list must be provided together")
		}
		if _, err := loadOptional[revocationState](l, oldState, typeRevocationState); err != nil {
			return err
		}
		if _, err := loadOptional[revocationStatusList](l, oldStatusList, typeRevocationStatusList); err != nil {
			return err
		}
		if native.GoString(tailsPath) == "" {
			return inputErr("Tails path is empty")
		}
		if revRegIdx < 1 || revRegIdx > def.Value.MaxCredNum {
			return &failure{code: codeInvalidUserRevocID, message: "Invalid revocation index " + strconv.FormatInt(revRegIdx, 10)}
		}
		if list.Timestamp == nil {
			return inputErr("Revocation status list has no timestamp")
		}
		if list.revoked(revRegIdx) {
			return &failure{code: codeCredentialRevoked, message: "Credential is revoked"}
		}
		*result = l.put(typeRevocationState, &revocationState{
			Witness:   witness{Omega: opaque()},
			RevReg:    accumulator{Accum: list.CurrentAccumulator},
			Timestamp: *list.Timestamp,
			RevRegIdx: revRegIdx,
		})
		return nil
	})
}

func (l *Library) CreateCredentialOffer(schemaID, credDefID *byte, keyProof native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateCredentialOffer, func() error {
		kcp, err := load[keyCorrectnessProof](l, keyProof, typeKeyCorrectnessProof)
		if err != nil {
			return err
		}
		sid, err := required(schemaID, "schema_id")
		if err != nil {
			return err
		}
		cdid, err := required(credDefID, "cred_def_id")
		if err != nil {
			return err
		}
		nonce, err := randomDecimal(80)
		if err != nil {
			return err
		}
		*result = l.put(typeCredentialOffer, &credentialOffer{
			SchemaID:            sid,
			CredDefID:           cdid,
			KeyCorrectnessProof: *kcp,
			Nonce:               nonce,
		})
		return nil
	})
}
